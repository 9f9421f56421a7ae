package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bufrsh/cronchirp/internal/config"
	"github.com/bufrsh/cronchirp/internal/mocks"
	"github.com/bufrsh/cronchirp/internal/notifier"
	"github.com/bufrsh/cronchirp/internal/pp"
)

//nolint:paralleltest // environment vars are global
func TestReadAndAppendShoutrrrURL(t *testing.T) {
	key := keyPrefix + "SHOUTRRR"

	for name, tc := range map[string]struct {
		set           bool
		val           string
		ok            bool
		services      []string
		prepareMockPP func(*mocks.MockPP)
	}{
		"unset": {false, "", true, nil, nil},
		"empty": {true, "", true, nil, nil},
		"generic": {
			true, "generic+https://example.com/api/v1/postStuff",
			true, []string{"generic"}, nil,
		},
		"multiple": {
			true, "generic+https://example.com/api/v1/postStuff\n" +
				"generic+https://example.org/api/v1/postStuff",
			true, []string{"generic", "generic"}, nil,
		},
		"illform": {
			true, "meow://kitty", false, nil,
			func(m *mocks.MockPP) {
				m.EXPECT().Errorf(pp.EmojiUserError,
					"Could not create shoutrrr client: %v", gomock.Any())
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			set(t, key, tc.set, tc.val)

			mockCtrl := gomock.NewController(t)
			mockPP := mocks.NewMockPP(mockCtrl)
			if tc.prepareMockPP != nil {
				tc.prepareMockPP(mockPP)
			}

			var field notifier.Notifier
			ok := config.ReadAndAppendShoutrrrURL(mockPP, key, &field)
			require.Equal(t, tc.ok, ok)

			if tc.services == nil {
				require.Nil(t, field)
			} else {
				var services []string
				field.Describe(func(service, _ string) {
					services = append(services, service)
				})
				require.Equal(t, tc.services, services)
			}
		})
	}
}
