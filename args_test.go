package irailmcp

import (
	"strings"
	"testing"
)

func TestNormalizeTrainID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "IC538", want: "IC538"},
		{in: "ic538", want: "IC538"},
		{in: "IC 538", want: "IC538"},
		{in: "BE.NMBS.IC538", want: "IC538"},
		{in: "be.nmbs.p8008", want: "P8008"},
		{in: "S53562", want: "S53562"},
		{in: "  L562  ", want: "L562"},
		{in: "", wantErr: true},
		{in: "538", wantErr: true},
		{in: "Brussels", wantErr: true},
		{in: "IC", wantErr: true},
		{in: "IC538X", wantErr: true},
		{in: "NMBS.IC538", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeTrainID(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeTrainID(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeTrainID(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizeTrainID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    any
		wantErr string
	}{
		{name: "valid search", args: SearchStationsArgs{Query: "Brussels"}},
		{name: "missing query", args: SearchStationsArgs{}, wantErr: "query"},
		{name: "bad lang", args: SearchStationsArgs{Query: "Gent", Lang: "xx"}, wantErr: "lang"},
		{name: "valid liveboard", args: LiveboardArgs{Station: "Leuven", Lang: "nl"}},
		{name: "missing station", args: LiveboardArgs{}, wantErr: "station"},
		{name: "missing destination", args: ConnectionsArgs{FromStation: "Gent"}, wantErr: "to_station"},
		{name: "missing train id", args: TrainInfoArgs{}, wantErr: "train_id"},
		{name: "disturbances default", args: DisturbancesArgs{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.args)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateArgs: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not name parameter %q", err, tt.wantErr)
			}
		})
	}
}
