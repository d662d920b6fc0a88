package enum

import "encoding/json"

// CacheState is the lifecycle state of the offline asset cache.
type CacheState int

const (
	CacheStateIdle       CacheState = 0
	CacheStateInstalling CacheState = 1
	CacheStateWaiting    CacheState = 2
	CacheStateActivating CacheState = 3
	CacheStateActive     CacheState = 4
)

func (s CacheState) String() string {
	names := [...]string{"Idle", "Installing", "Waiting", "Activating", "Active"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

func (s CacheState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
