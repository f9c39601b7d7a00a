package common

import (
	"os"
	"strconv"
	"sync"
)

const DefaultServiceName = "shopfloor"

var (
	serviceName     = DefaultServiceName
	serviceInstance string
	instanceOnce    sync.Once
)

func SetServiceName(name string) {
	if name != "" {
		serviceName = name
	}
}

func GetServiceName() string {
	return serviceName
}

// GetServiceInstance returns the host name, or the pid when the host name is unavailable.
func GetServiceInstance() string {
	instanceOnce.Do(func() {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "pid-" + strconv.Itoa(os.Getpid())
		}
		serviceInstance = host
	})
	return serviceInstance
}
