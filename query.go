package client

import (
	"net/url"
	"strconv"
)

// queryParam is a single optional query component. A nil value is skipped.
type queryParam struct {
	key   string
	value *string
}

// queryParams is an ordered list of optional query components.
type queryParams []queryParam

func (q queryParams) addString(key, value string) queryParams {
	if value == "" {
		return append(q, queryParam{key: key})
	}
	return append(q, queryParam{key: key, value: &value})
}

func (q queryParams) addInt(key string, value *int) queryParams {
	if value == nil {
		return append(q, queryParam{key: key})
	}
	s := strconv.Itoa(*value)
	return append(q, queryParam{key: key, value: &s})
}

func (q queryParams) addBool(key string, value *bool) queryParams {
	if value == nil {
		return append(q, queryParam{key: key})
	}
	s := strconv.FormatBool(*value)
	return append(q, queryParam{key: key, value: &s})
}

// values returns the set components as url.Values. Unset components are
// omitted; nil is returned when nothing is set.
func (q queryParams) values() url.Values {
	var v url.Values
	for _, p := range q {
		if p.value == nil {
			continue
		}
		if v == nil {
			v = url.Values{}
		}
		v.Add(p.key, *p.value)
	}
	return v
}
