package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/library-circulation/cmd/library/circulation"
	"github.com/matryer/is"
)

var notice = circulation.LateReturnNotice{
	BookTitle:   "book to test ntfy",
	MemberName:  "Hanako",
	OverdueDays: 3,
	Fine:        300,
}

func TestLateReturn(t *testing.T) {

	t.Run("publishes the late return to the topic without errors", func(t *testing.T) {
		is := is.New(t)

		var gotPath, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotPath = r.URL.Path
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ntfy := NewNtfy(true, srv.URL+"/library", srv.Client())
		err := ntfy.LateReturn(context.Background(), notice)
		is.NoErr(err)
		is.Equal(gotPath, "/library/Late_return")
		is.Equal(gotBody, "Late return:\nTitle: book to test ntfy\nMember: Hanako\nOverdue days: 3\nFine: 300")
	})

	t.Run("a disabled notifier never calls the topic", func(t *testing.T) {
		is := is.New(t)

		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		ntfy := NewNtfy(false, srv.URL, srv.Client())
		err := ntfy.LateReturn(context.Background(), notice)
		is.NoErr(err)
		is.True(!called)
	})

	t.Run("a non 200 response is reported", func(t *testing.T) {
		is := is.New(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		ntfy := NewNtfy(true, srv.URL, srv.Client())
		err := ntfy.LateReturn(context.Background(), notice)
		is.Equal(err, NewErrNotificationFailed(http.StatusTooManyRequests))
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Millisecond)
		defer cancel()

		ntfy := NewNtfy(true, srv.URL, srv.Client())
		err := ntfy.LateReturn(ctx, notice)
		is.True(errors.Is(err, context.DeadlineExceeded))
	})
}
