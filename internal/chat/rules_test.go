package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 14, hour, 15, 0, 0, time.Local)
}

func TestRespondOutsideOpeningHours(t *testing.T) {
	for _, hour := range []int{0, 5, 9, 22, 23} {
		got := Respond("What's on today's menu?", at(hour))
		require.Equal(t, ClosedReply, got, "hour %d", hour)
	}
}

func TestRespondDuringOpeningHours(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"What's on today's menu?", rules[0].Reply},
		{"Do you have a MENU?", rules[0].Reply},
		{"catering availability?", rules[1].Reply},
		{"delivery status please", rules[2].Reply},
		{"anything coming soon?", rules[3].Reply},
		{"hello there", defaultReply},
		{"", defaultReply},
	}
	for _, tt := range tests {
		got := Respond(tt.message, at(12))
		require.Equal(t, tt.want, got, "message %q", tt.message)
	}
}

func TestRespondFirstMatchWins(t *testing.T) {
	// "menu" rule sits above "delivery", so a message hitting both gets the menu reply
	got := Respond("is delivery on today's menu?", at(12))
	require.Equal(t, rules[0].Reply, got)
}

func TestRespondBoundaryHours(t *testing.T) {
	require.NotEqual(t, ClosedReply, Respond("hi", at(10)))
	require.NotEqual(t, ClosedReply, Respond("hi", at(21)))
	require.Equal(t, ClosedReply, Respond("hi", at(22)))
}

func TestDefaultReplyListsTopics(t *testing.T) {
	got := Respond("??", at(12))
	for _, topic := range []string{"Today's Menu", "Catering", "Delivery Status", "Coming Soon"} {
		require.True(t, strings.Contains(got, topic), "missing topic %q", topic)
	}
}
