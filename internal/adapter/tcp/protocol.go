package tcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReplyOK is written back when a job was accepted. Anything else is an error text.
const ReplyOK = "OK"

var ErrNotArray = errors.New("request must be a JSON array")

// ParseRequest validates a request of the form [<job id>] and returns the id.
// Error texts are sent to the client verbatim.
func ParseRequest(data []byte) (int64, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrNotArray
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var args []interface{}
	if err := dec.Decode(&args); err != nil {
		return 0, fmt.Errorf("invalid JSON: %s", describeJSONError(err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("unexpected data after request")
	}

	if len(args) == 0 {
		return 0, fmt.Errorf("0 args, expected exactly 1")
	}
	id, err := jobID(args[0])
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("%d args, expected exactly 1", len(args))
	}
	return id, nil
}

func jobID(v interface{}) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("ID %s is not int", jsonType(v))
	}
	id, err := n.Int64()
	if err != nil {
		if strings.ContainsAny(n.String(), ".eE") {
			return 0, fmt.Errorf("ID float is not int")
		}
		return 0, fmt.Errorf("ID %s is out of range", n.String())
	}
	return id, nil
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func describeJSONError(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s at offset %d", syntaxErr.Error(), syntaxErr.Offset)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return "unexpected end of input"
	}
	return err.Error()
}
