package validate

import "testing"

var registerChecks = []Check{
	{Field: "name", Message: "Name is required", Kind: NotEmpty},
	{Field: "email", Message: "Please include a valid email", Kind: Email},
	{Field: "password", Message: "Please enter a password with 6 or more characters", Kind: MinLength, Min: 6},
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		wantMsgs []string
	}{
		{
			name:     "all-valid",
			fields:   map[string]string{"name": "A", "email": "a@x.com", "password": "secret1"},
			wantMsgs: nil,
		},
		{
			name:     "empty-name",
			fields:   map[string]string{"name": "", "email": "a@x.com", "password": "secret1"},
			wantMsgs: []string{"Name is required"},
		},
		{
			name:     "bad-email",
			fields:   map[string]string{"name": "A", "email": "not-an-email", "password": "secret1"},
			wantMsgs: []string{"Please include a valid email"},
		},
		{
			name:     "empty-email",
			fields:   map[string]string{"name": "A", "email": "", "password": "secret1"},
			wantMsgs: []string{"Please include a valid email"},
		},
		{
			name:     "short-password",
			fields:   map[string]string{"name": "A", "email": "a@x.com", "password": "five5"},
			wantMsgs: []string{"Please enter a password with 6 or more characters"},
		},
		{
			name:     "empty-password",
			fields:   map[string]string{"name": "A", "email": "a@x.com", "password": ""},
			wantMsgs: []string{"Please enter a password with 6 or more characters"},
		},
		{
			name:   "everything-wrong",
			fields: map[string]string{"name": "", "email": "x", "password": "123"},
			wantMsgs: []string{
				"Name is required",
				"Please include a valid email",
				"Please enter a password with 6 or more characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Run(tt.fields, registerChecks)
			if len(errs) != len(tt.wantMsgs) {
				t.Fatalf("Run() returned %d errors, want %d: %+v", len(errs), len(tt.wantMsgs), errs)
			}
			for i, want := range tt.wantMsgs {
				if errs[i].Msg != want {
					t.Fatalf("error %d msg = %q, want %q", i, errs[i].Msg, want)
				}
			}
		})
	}
}

func TestRunFieldMetadata(t *testing.T) {
	errs := Run(map[string]string{"name": ""}, []Check{
		{Field: "name", Message: "Name is required", Kind: NotEmpty},
	})
	if len(errs) != 1 {
		t.Fatalf("Run() returned %d errors, want 1", len(errs))
	}
	if errs[0].Param != "name" {
		t.Fatalf("error param = %q, want %q", errs[0].Param, "name")
	}
	if errs[0].Location != "body" {
		t.Fatalf("error location = %q, want %q", errs[0].Location, "body")
	}
}
