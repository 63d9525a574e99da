// Package policy builds the IAM documents attached to the execute-api role.
//
// Two documents are produced: a trust policy naming who may assume the role,
// and an inline permission policy granting execute-api:Invoke on a single
// REST API. Both are pure functions of their inputs.
package policy

import (
	"encoding/json"
	"fmt"
)

// Version is the IAM policy language version used for every document.
const Version = "2012-10-17"

// Document is an IAM policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Statement is a single policy statement.
//
// Action is either a string or a []string; IAM accepts both and the two
// documents use different forms.
type Statement struct {
	Sid       string     `json:"Sid,omitempty"`
	Effect    string     `json:"Effect"`
	Principal *Principal `json:"Principal,omitempty"`
	Action    any        `json:"Action"`
	Resource  []string   `json:"Resource,omitempty"`
}

// Principal lists the principals a trust statement applies to.
type Principal struct {
	Service []string `json:"Service,omitempty"`
	AWS     []string `json:"AWS,omitempty"`
}

// JSON encodes the document in the form IAM expects for
// AssumeRolePolicyDocument and PolicyDocument parameters.
func (d *Document) JSON() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshaling policy document: %w", err)
	}
	return string(data), nil
}

// Indented encodes the document for display.
func (d *Document) Indented() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling policy document: %w", err)
	}
	return string(data), nil
}
