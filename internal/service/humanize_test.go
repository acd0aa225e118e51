package service

import (
	"testing"
	"time"
)

func TestHumanRelativeTime(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		ageSec int64
		want   string
	}{
		{"刚刚", 0, "0m ago"},
		{"五分钟", 300, "5m ago"},
		{"五十九分钟", 3540, "59m ago"},
		{"两小时", 7200, "2h ago"},
		{"二十三小时", 82800, "23h ago"},
		{"三天", 86400 * 3, "3d ago"},
		{"三十天整仍是天数", 86400 * 30, "30d ago"},
		{"超过三十天退化成月份", 86400 * 45, "Jan '24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HumanRelativeTime(now.Unix()-tt.ageSec, now)
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHumanViewCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1000"},
		{1001, "1k"},
		{1050, "1.1k"},
		{1500, "1.5k"},
		{2345, "2.3k"},
		{9999, "10k"},
		{123456, "123.5k"},
	}

	for _, tt := range tests {
		got := HumanViewCount(tt.n)
		if got != tt.want {
			t.Errorf("HumanViewCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
