package enum

import "encoding/json"

// GenerateState is the state of a session's generate/print sequence.
type GenerateState int

const (
	GenerateStateIdle       GenerateState = 0
	GenerateStateGenerating GenerateState = 1
)

func (s GenerateState) String() string {
	names := [...]string{"Idle", "Generating"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

func (s GenerateState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GenerateState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = GenerateState(i)
		return nil
	}
	switch str {
	case "Idle":
		*s = GenerateStateIdle
	case "Generating":
		*s = GenerateStateGenerating
	}
	return nil
}
