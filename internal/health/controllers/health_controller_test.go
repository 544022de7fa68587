package controllers

import (
	"encoding/json"
	"testing"
)

func TestFlexStringAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]string{
		`{"temperature":36.7}`:   "36.7",
		`{"temperature":"37.1"}`: "37.1",
		`{"temperature":null}`:   "",
		`{}`:                     "",
	}
	for body, want := range cases {
		var req SubmitHealthRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if string(req.Temperature) != want {
			t.Errorf("%s: temperature = %q, want %q", body, req.Temperature, want)
		}
	}

	var f flexString
	if err := f.UnmarshalParam("38"); err != nil || f != "38" {
		t.Errorf("form value = %q, err = %v", f, err)
	}
}
