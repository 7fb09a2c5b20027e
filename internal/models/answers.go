package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerMap maps a 1-based question number to an option text. Clients
// send it as a JSON object keyed by stringified question numbers
// ({"1": "F = ma"}); keys are parsed into ints at the boundary so the
// rest of the service never deals with string keys. JSON null values
// mean "unanswered" and are dropped, so len(m) is the attempted count.
type AnswerMap map[int]string

func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(AnswerMap, len(raw))
	for key, value := range raw {
		num, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("answer key %q is not a question number: %w", key, err)
		}
		if value == nil {
			continue
		}
		out[num] = *value
	}
	*m = out
	return nil
}

func (m AnswerMap) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(m))
	for num, value := range m {
		raw[strconv.Itoa(num)] = value
	}
	return json.Marshal(raw)
}

// Get returns the answer for a question number, nil when unanswered.
func (m AnswerMap) Get(num int) *string {
	if value, ok := m[num]; ok {
		return &value
	}
	return nil
}
