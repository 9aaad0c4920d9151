package types_test

import (
	"testing"

	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestSupportStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.SupportStatus
		want   bool
	}{
		{
			name:   "valid unassigned",
			status: types.SupportStatusUnassigned,
			want:   true,
		},
		{
			name:   "valid engaging",
			status: types.SupportStatusEngaging,
			want:   true,
		},
		{
			name:   "valid further info required",
			status: types.SupportStatusFurtherInfoRequired,
			want:   true,
		},
		{
			name:   "valid waiting",
			status: types.SupportStatusWaiting,
			want:   true,
		},
		{
			name:   "valid not yet",
			status: types.SupportStatusNotYet,
			want:   true,
		},
		{
			name:   "valid complete",
			status: types.SupportStatusComplete,
			want:   true,
		},
		{
			name:   "valid withdrawn",
			status: types.SupportStatusWithdrawn,
			want:   true,
		},
		{
			name:   "invalid status",
			status: types.SupportStatus("invalid"),
			want:   false,
		},
		{
			name:   "empty status",
			status: types.SupportStatus(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestParseSupportStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.SupportStatus
		wantErr bool
	}{
		{
			name:    "valid engaging",
			input:   "ENGAGING",
			want:    types.SupportStatusEngaging,
			wantErr: false,
		},
		{
			name:    "valid further info required",
			input:   "FURTHER_INFO_REQUIRED",
			want:    types.SupportStatusFurtherInfoRequired,
			wantErr: false,
		},
		{
			name:    "lowercase is rejected",
			input:   "engaging",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid status",
			input:   "invalid",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty status",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseSupportStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestAllSupportStatuses(t *testing.T) {
	statuses := types.AllSupportStatuses()
	gt.A(t, statuses).Length(7)

	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}

func TestSupportStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from types.SupportStatus
		to   types.SupportStatus
		want bool
	}{
		{
			name: "unassigned to engaging",
			from: types.SupportStatusUnassigned,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "unassigned to waiting",
			from: types.SupportStatusUnassigned,
			to:   types.SupportStatusWaiting,
			want: true,
		},
		{
			name: "unassigned to not yet",
			from: types.SupportStatusUnassigned,
			to:   types.SupportStatusNotYet,
			want: true,
		},
		{
			name: "unassigned cannot complete directly",
			from: types.SupportStatusUnassigned,
			to:   types.SupportStatusComplete,
			want: false,
		},
		{
			name: "unassigned cannot request further info",
			from: types.SupportStatusUnassigned,
			to:   types.SupportStatusFurtherInfoRequired,
			want: false,
		},
		{
			name: "engaging to further info required",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusFurtherInfoRequired,
			want: true,
		},
		{
			name: "engaging to waiting",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusWaiting,
			want: true,
		},
		{
			name: "engaging to complete",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusComplete,
			want: true,
		},
		{
			name: "engaging to withdrawn",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusWithdrawn,
			want: true,
		},
		{
			name: "engaging cannot return to unassigned",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusUnassigned,
			want: false,
		},
		{
			name: "engaging cannot go to not yet",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusNotYet,
			want: false,
		},
		{
			name: "further info required back to engaging",
			from: types.SupportStatusFurtherInfoRequired,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "further info required cannot complete",
			from: types.SupportStatusFurtherInfoRequired,
			to:   types.SupportStatusComplete,
			want: false,
		},
		{
			name: "waiting back to engaging",
			from: types.SupportStatusWaiting,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "waiting cannot withdraw",
			from: types.SupportStatusWaiting,
			to:   types.SupportStatusWithdrawn,
			want: false,
		},
		{
			name: "not yet to engaging",
			from: types.SupportStatusNotYet,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "not yet to waiting",
			from: types.SupportStatusNotYet,
			to:   types.SupportStatusWaiting,
			want: true,
		},
		{
			name: "complete can reopen to engaging",
			from: types.SupportStatusComplete,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "complete cannot go to waiting",
			from: types.SupportStatusComplete,
			to:   types.SupportStatusWaiting,
			want: false,
		},
		{
			name: "withdrawn can reopen to engaging",
			from: types.SupportStatusWithdrawn,
			to:   types.SupportStatusEngaging,
			want: true,
		},
		{
			name: "same status is a no-op transition",
			from: types.SupportStatusEngaging,
			to:   types.SupportStatusEngaging,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.from.CanTransitionTo(tt.to)).True()
			} else {
				gt.B(t, tt.from.CanTransitionTo(tt.to)).False()
			}
		})
	}
}

func TestSupportStatus_AcceptsAccessors(t *testing.T) {
	for _, status := range types.AllSupportStatuses() {
		want := status == types.SupportStatusEngaging
		gt.V(t, status.AcceptsAccessors()).
			Describef("AcceptsAccessors for %s", status).
			Equal(want)
	}
}
