package directory

import (
	"shopfloor/common"
)

type PersonStatus string

const (
	PersonActive   PersonStatus = "active"
	PersonInactive PersonStatus = "inactive"
)

type Person struct {
	ID     string       `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Role   string       `json:"role" yaml:"role"`
	Site   string       `json:"site" yaml:"site"`
	Team   string       `json:"team" yaml:"team"`
	Status PersonStatus `json:"status" yaml:"status"`
}

type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Site    string   `json:"site" yaml:"site"`
	Leader  string   `json:"leader" yaml:"leader"`
	Members []string `json:"members" yaml:"members"`
}

type Site struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Location    string   `json:"location" yaml:"location"`
	WorkCenters []string `json:"workCenters" yaml:"workCenters"`
}

type PeopleQuery struct {
	Keyword string       `form:"keyword" json:"keyword"`
	Status  PersonStatus `form:"status" json:"status"`
	Team    string       `form:"team" json:"team"`
}

// Directory is the read-only catalog of people, teams and sites loaded from fixtures.
type Directory struct {
	people []Person
	teams  []Team
	sites  []Site
}

func NewDirectory(people []Person, teams []Team, sites []Site) *Directory {
	return &Directory{
		people: append([]Person{}, people...),
		teams:  append([]Team{}, teams...),
		sites:  append([]Site{}, sites...),
	}
}

func (d *Directory) People(q *PeopleQuery) []Person {
	r := []Person{}
	for _, p := range d.people {
		if q != nil {
			if q.Status != "" && p.Status != q.Status {
				continue
			}
			if q.Team != "" && p.Team != q.Team {
				continue
			}
			if q.Keyword != "" && !common.ContainsFold(p.ID, q.Keyword) && !common.ContainsFold(p.Name, q.Keyword) &&
				!common.ContainsFold(p.Role, q.Keyword) {
				continue
			}
		}
		r = append(r, p)
	}
	return r
}

func (d *Directory) FindPerson(id string) (Person, bool) {
	for _, p := range d.people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

func (d *Directory) Teams(keyword string) []Team {
	r := []Team{}
	for _, t := range d.teams {
		if keyword == "" || common.ContainsFold(t.ID, keyword) || common.ContainsFold(t.Name, keyword) {
			r = append(r, t)
		}
	}
	return r
}

func (d *Directory) Sites(keyword string) []Site {
	r := []Site{}
	for _, s := range d.sites {
		if keyword == "" || common.ContainsFold(s.ID, keyword) || common.ContainsFold(s.Name, keyword) ||
			common.ContainsFold(s.Location, keyword) {
			r = append(r, s)
		}
	}
	return r
}
