package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"snipes-server/internal/domain"
	"snipes-server/pkg/api"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		in      api.ClientCommand
		want    domain.Command
		wantErr error
	}{
		{
			name: "move hero",
			in:   api.ClientCommand{Action: "MOVE_HERO", Payload: json.RawMessage(`{"dir":"north"}`)},
			want: domain.MoveHero(domain.North),
		},
		{
			name: "original command name with key alias",
			in:   api.ClientCommand{Action: "MOVE_HERO_CMD", Payload: json.RawMessage(`{"dir":"left"}`)},
			want: domain.MoveHero(domain.West),
		},
		{
			name: "shoot with shoot alias",
			in:   api.ClientCommand{Action: "hero_shoot", Payload: json.RawMessage(`{"dir":"shootUpRight"}`)},
			want: domain.HeroShoot(domain.NorthEast),
		},
		{
			name: "change setting",
			in:   api.ClientCommand{Action: "CHANGE_SETTING", Payload: json.RawMessage(`{"key":"snipesMayShoot","value":false}`)},
			want: domain.ChangeSetting(domain.SettingSnipesMayShoot, false),
		},
		{
			name: "create walls ignores payload",
			in:   api.ClientCommand{Action: "CREATE_WALLS", Payload: json.RawMessage(`{"junk":1}`)},
			want: domain.CreateWalls(),
		},
		{
			name: "tick commands",
			in:   api.ClientCommand{Action: "MOVE_BULLETS"},
			want: domain.AdvanceBullets(),
		},
		{
			name:    "unknown action",
			in:      api.ClientCommand{Action: "TELEPORT"},
			wantErr: ErrUnknownCommand,
		},
		{
			name:    "unknown direction",
			in:      api.ClientCommand{Action: "MOVE_HERO", Payload: json.RawMessage(`{"dir":"up-ish"}`)},
			wantErr: domain.ErrUnknownDirection,
		},
		{
			name:    "unknown setting is rejected",
			in:      api.ClientCommand{Action: "CHANGE_SETTING", Payload: json.RawMessage(`{"key":"godMode","value":true}`)},
			wantErr: domain.ErrUnknownSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCommand() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCommand_BadPayload(t *testing.T) {
	bad := []api.ClientCommand{
		{Action: "MOVE_HERO"},
		{Action: "MOVE_HERO", Payload: json.RawMessage(`{"dir":""}`)},
		{Action: "MOVE_HERO", Payload: json.RawMessage(`[1,2]`)},
		{Action: "CHANGE_SETTING", Payload: json.RawMessage(`{"value":true}`)},
	}

	for _, c := range bad {
		if _, err := ParseCommand(c); err == nil {
			t.Errorf("ParseCommand(%s %s) expected error", c.Action, c.Payload)
		}
	}
}
