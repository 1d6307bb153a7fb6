// Package feed turns the performance endpoint's JSON into measurement
// messages on the network core.
package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"minilcd/internal/comm"
)

var (
	ErrNoJSON         = errors.New("feed: no JSON object in response")
	ErrNoMeasurements = errors.New("feed: no measurements found in JSON")
	ErrNoSamples      = errors.New("feed: measurements array holds no objects")
)

var cpuKeys = func() [comm.CPUCores]string {
	var k [comm.CPUCores]string
	for i := range k {
		k[i] = "CPU" + strconv.Itoa(i)
	}
	return k
}()

// Parse decodes a response body of the form
//
//	{"measurements":[{"time":..., "CPU0":..., ..., "GPUMEM":...}, ...]}
//
// Anything before the first '{' (an HTTP header, say) is skipped. Values
// may be JSON numbers or numeric strings; missing or unparsable values read
// as 0. When the array holds several samples the last one wins.
func Parse(data []byte) (comm.Message, error) {
	start := bytes.IndexByte(data, '{')
	if start < 0 {
		return comm.Message{}, ErrNoJSON
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data[start:], &doc); err != nil {
		return comm.Message{}, fmt.Errorf("feed: %w", err)
	}
	raw, ok := doc["measurements"]
	if !ok {
		return comm.Message{}, ErrNoMeasurements
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return comm.Message{}, ErrNoMeasurements
	}

	var (
		m     comm.Measurements
		found bool
	)
	for _, it := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(it, &obj); err != nil {
			continue
		}
		found = true
		m = sample(obj)
	}
	if !found {
		return comm.Message{}, ErrNoSamples
	}
	return m.Message(), nil
}

func sample(obj map[string]json.RawMessage) comm.Measurements {
	var m comm.Measurements
	for i, k := range cpuKeys {
		m.CPU[i] = value(obj[k])
	}
	m.RAM = value(obj["RAM"])
	m.GPU = value(obj["GPU"])
	m.GPUVD = value(obj["GPUVD"])
	m.GPUVE = value(obj["GPUVE"])
	m.GPUMem = value(obj["GPUMEM"])
	return m
}

// value reads the leading integer of a number or numeric string, the way
// the firmware always has: "42.7" is 42, negatives clamp to 0.
func value(raw json.RawMessage) uint32 {
	if len(raw) == 0 {
		return 0
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
	}
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(leadingNumber(s), 64)
	if err != nil || f <= 0 {
		return 0
	}
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}

func leadingNumber(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	return s[:end]
}
