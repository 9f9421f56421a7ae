package notifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bufrsh/cronchirp/internal/mocks"
	"github.com/bufrsh/cronchirp/internal/notifier"
)

func TestComposedDescribe(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	ns := make([]notifier.Notifier, 0, 3)
	for i := 0; i < 3; i++ {
		n := mocks.NewMockNotifier(mockCtrl)
		n.EXPECT().Describe(gomock.Any()).Do(func(callback func(string, string)) {
			callback("service", "params")
		})
		ns = append(ns, n)
	}

	count := 0
	notifier.NewComposed(ns...).Describe(func(service, params string) {
		count++
		require.Equal(t, "service", service)
		require.Equal(t, "params", params)
	})
	require.Equal(t, 3, count)
}

func TestComposedSkipsNil(t *testing.T) {
	t.Parallel()

	composed := notifier.NewComposed(nil, notifier.NewComposed(), nil)
	count := 0
	composed.Describe(func(string, string) { count++ })
	require.Equal(t, 0, count)
}

func TestComposedSend(t *testing.T) {
	t.Parallel()

	for _, oks := range [][]bool{
		{true, true}, {true, false}, {false, true}, {false, false},
	} {
		mockCtrl := gomock.NewController(t)
		ns := make([]notifier.Notifier, 0, len(oks))
		expected := true
		for _, ok := range oks {
			n := mocks.NewMockNotifier(mockCtrl)
			n.EXPECT().Send(gomock.Any(), gomock.Any(), "hello").Return(ok)
			ns = append(ns, n)
			expected = expected && ok
		}

		composed := notifier.NewComposed(ns...)
		require.Equal(t, expected, composed.Send(context.Background(), nil, "hello"))
	}
}
