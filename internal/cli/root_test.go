package cli

import (
	"testing"

	"github.com/julianstephens/gryd/internal/models"
)

func TestParseReminderTime(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "08:30", hour: 8, minute: 30},
		{in: "00:00", hour: 0, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		hour, minute, err := parseReminderTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseReminderTime(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseReminderTime(%q) returned unexpected error: %v", tt.in, err)
			continue
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("parseReminderTime(%q) = %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestParseDataSource(t *testing.T) {
	tests := []struct {
		in      string
		want    models.DataSource
		wantErr bool
	}{
		{in: "", want: models.DataSourceManual},
		{in: "manual", want: models.DataSourceManual},
		{in: "GitHub", want: models.DataSourceGitHub},
		{in: "gitlab", want: models.DataSourceGitLab},
		{in: "bitbucket", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseDataSource(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDataSource(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDataSource(%q) returned unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDataSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := validateDate("2026-08-30"); err != nil {
		t.Errorf("validateDate(valid) returned unexpected error: %v", err)
	}
	for _, in := range []string{"30-08-2026", "2026-13-01", "yesterday", ""} {
		if err := validateDate(in); err == nil {
			t.Errorf("validateDate(%q) succeeded, want error", in)
		}
	}
}
