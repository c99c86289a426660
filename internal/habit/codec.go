package habit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://habitbox.local/schema/habits.json"

const listSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "doneDates", "nonRemovable"],
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": "string", "pattern": "\\S"},
			"doneDates": {
				"type": "array",
				"uniqueItems": true,
				"items": {"type": "string", "format": "date"}
			},
			"nonRemovable": {"type": "boolean"}
		}
	}
}`

var ErrInvalidList = errors.New("habit: invalid stored list")

var schema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(listSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}()

// Encode renders the list as the flat JSON array kept under StorageKey.
func Encode(l List) (string, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses and validates a stored list. Any parse failure, schema
// violation or duplicate id yields an error wrapping ErrInvalidList.
func Decode(raw string) (List, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidList, firstCause(err))
	}
	var l List
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	seen := make(map[int64]struct{}, len(l))
	for i, h := range l {
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidList, h.ID)
		}
		seen[h.ID] = struct{}{}
		l[i].Name = strings.TrimSpace(h.Name)
	}
	return l, nil
}

// firstCause digs out the innermost schema error, which names the offending
// field instead of the whole document.
func firstCause(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
