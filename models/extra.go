package models

import "encoding/json"

// extraFields splits a raw object into the fields not covered by a record's
// known keys. The server is free to attach arbitrary attributes to any
// record; they are carried along untouched instead of being dropped.
func extraFields(data []byte, known ...string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}
