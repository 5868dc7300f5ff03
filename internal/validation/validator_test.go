// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package validation

import (
	"strings"
	"testing"
)

type sessionRequest struct {
	Sector  string         `json:"sector" validate:"omitempty,sector"`
	Status  string         `json:"status,omitempty" validate:"omitempty,session_status"`
	Name    string         `json:"company_name" validate:"required,max=10"`
	Answers map[string]int `json:"answers" validate:"omitempty,dive,keys,answer_key,endkeys,gte=0,lte=10"`
	Variant string         `json:"variant" validate:"omitempty,oneof=executive detailed"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := sessionRequest{Sector: "Retail", Status: "in_progress", Name: "Acme", Answers: map[string]int{"nps_score": 7}}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   sessionRequest
		field string
		tag   string
	}{
		{"missing name", sessionRequest{}, "company_name", "required"},
		{"long name", sessionRequest{Name: "abcdefghijkl"}, "company_name", "max"},
		{"unknown sector", sessionRequest{Name: "a", Sector: "underwater basket weaving"}, "sector", "sector"},
		{"bad status", sessionRequest{Name: "a", Status: "paused"}, "status", "session_status"},
		{"bad variant", sessionRequest{Name: "a", Variant: "poster"}, "variant", "oneof"},
		{"bad answer key", sessionRequest{Name: "a", Answers: map[string]int{"Bad-Key": 1}}, "answers[Bad-Key]", "answer_key"},
		{"answer out of range", sessionRequest{Name: "a", Answers: map[string]int{"nps": 11}}, "answers[nps]", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("len(Fields) = %d, want 1 (%v)", len(verr.Fields), verr)
			}
			if got := verr.Fields[0].Field; got != tt.field {
				t.Errorf("Field = %q, want %q", got, tt.field)
			}
			if got := verr.Fields[0].Tag; got != tt.tag {
				t.Errorf("Tag = %q, want %q", got, tt.tag)
			}
			if verr.Fields[0].Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&sessionRequest{})
	apiErr := single.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "company_name is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "company_name is required")
	}
	if apiErr.Details["field"] != "company_name" {
		t.Errorf("Details[field] = %v, want company_name", apiErr.Details["field"])
	}

	multi := ValidateStruct(&sessionRequest{Sector: "nowhere"})
	apiErr = multi.ToAPIError()
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Details missing fields")
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q, want Validation failed", empty.Message)
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if err := ValidateVar("status", "completed", "session_status"); err != nil {
		t.Errorf("ValidateVar(completed) = %v, want nil", err)
	}
	verr := ValidateVar("id", "not-a-uuid", "uuid4")
	if verr == nil {
		t.Fatal("ValidateVar(uuid4) = nil, want error")
	}
	if verr.Fields[0].Field != "id" {
		t.Errorf("Field = %q, want id", verr.Fields[0].Field)
	}
	if verr.Fields[0].Message != "id must be a UUID" {
		t.Errorf("Message = %q, want %q", verr.Fields[0].Message, "id must be a UUID")
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}
