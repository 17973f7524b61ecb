package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{raw: "pending", want: StatusPending},
		{raw: "approved", want: StatusApproved},
		{raw: "rejected", want: StatusRejected},
		{raw: "shipped", wantErr: true},
		{raw: "Approved", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseStatus(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, want: true},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected, want: true},
		{name: "approved to rejected", from: StatusApproved, to: StatusRejected, want: false},
		{name: "approved to pending", from: StatusApproved, to: StatusPending, want: false},
		{name: "rejected to approved", from: StatusRejected, to: StatusApproved, want: false},
		{name: "rejected to pending", from: StatusRejected, to: StatusPending, want: false},
		{name: "same status is allowed", from: StatusApproved, to: StatusApproved, want: true},
		{name: "pending to pending", from: StatusPending, to: StatusPending, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
