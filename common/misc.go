package common

import (
	"os"
	"strings"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

func NextId(idWorker *sonyflake.Sonyflake) types.ID {
	id, err := idWorker.NextID()
	if err != nil {
		panic(err)
	}
	return types.ID(id)
}

// NewIdWorker does not depend on a private network address, the machine id is taken from the pid.
func NewIdWorker() *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		MachineID: func() (uint16, error) {
			return uint16(os.Getpid()), nil
		},
	})
}

// ContainsFold reports whether keyword is within s, ignoring case.
func ContainsFold(s, keyword string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(keyword))
}
