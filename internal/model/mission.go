package model

import "fmt"

// Mission is one of the four fixed outreach categories a visitor can select
// or be routed to. The set is closed; every other entity references it.
type Mission string

const (
	MissionContact  Mission = "contact"
	MissionDon      Mission = "don"
	MissionBenevole Mission = "benevole"
	MissionInfo     Mission = "info"
)

// Missions lists all valid missions in declaration order.
func Missions() []Mission {
	return []Mission{MissionContact, MissionDon, MissionBenevole, MissionInfo}
}

func (m Mission) IsValid() bool {
	switch m {
	case MissionContact, MissionDon, MissionBenevole, MissionInfo:
		return true
	}
	return false
}

func (m Mission) String() string {
	return string(m)
}

// ParseMission converts a wire value into a Mission.
func ParseMission(s string) (Mission, error) {
	m := Mission(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mission %q", s)
	}
	return m, nil
}
