package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/inno-lab/innovaid/pkg/controller/http"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/inno-lab/innovaid/pkg/repository/memory"
	"github.com/inno-lab/innovaid/pkg/usecase"
)

func newTestServer(t *testing.T) (*httpctrl.Server, *memory.Memory) {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()

	gt.NoError(t, repo.Innovation().Put(ctx, &model.Innovation{
		ID:      "inv-1",
		Name:    "Portable Dialysis",
		OwnerID: "user-owner",
	})).Required()
	gt.NoError(t, repo.User().Put(ctx, &model.User{
		ID: "user-owner", Name: "Olivia Owner", Type: types.UserTypeInnovator,
	})).Required()

	return httpctrl.New(usecase.New(repo)), repo
}

func qualifyingAccessorHeaders() map[string]string {
	return map[string]string{
		"X-Innovaid-User-Id":              "user-qa",
		"X-Innovaid-External-Id":          "ext-qa",
		"X-Innovaid-User-Type":            "ACCESSOR",
		"X-Innovaid-Organisation-Id":      "org-1",
		"X-Innovaid-Organisation-Unit-Id": "unit-1",
		"X-Innovaid-Organisation-Role":    "QUALIFYING_ACCESSOR",
	}
}

func TestServer_CreateAndUpdateSupport(t *testing.T) {
	server, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"status":"ENGAGING","message":"starting","accessorIds":["user-acc-a"]}`)
	req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports", body)
	for k, v := range qualifyingAccessorHeaders() {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(201)

	var created struct {
		ID          string   `json:"id"`
		Status      string   `json:"status"`
		Version     int64    `json:"version"`
		AccessorIDs []string `json:"accessorIds"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created)).Required()
	gt.V(t, created.Status).Equal("ENGAGING")
	gt.V(t, created.Version).Equal(1)
	gt.A(t, created.AccessorIDs).Length(1).Has("user-acc-a")

	// Move it to COMPLETE
	body = bytes.NewBufferString(`{"status":"COMPLETE"}`)
	req = httptest.NewRequest("PUT", "/api/v1/innovations/inv-1/supports/"+created.ID, body)
	for k, v := range qualifyingAccessorHeaders() {
		req.Header.Set(k, v)
	}

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(200)

	var updated struct {
		Status  string `json:"status"`
		Version int64  `json:"version"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated)).Required()
	gt.V(t, updated.Status).Equal("COMPLETE")
	gt.V(t, updated.Version).Equal(2)
}

func TestServer_CreateSupport_Rejections(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("no actor headers", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
			bytes.NewBufferString(`{"status":"WAITING"}`))
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(401)
	})

	t.Run("actor without qualifying role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
			bytes.NewBufferString(`{"status":"WAITING"}`))
		for k, v := range qualifyingAccessorHeaders() {
			req.Header.Set(k, v)
		}
		req.Header.Set("X-Innovaid-Organisation-Role", "ACCESSOR")

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(403)
	})

	t.Run("invalid transition", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
			bytes.NewBufferString(`{"status":"COMPLETE"}`))
		for k, v := range qualifyingAccessorHeaders() {
			req.Header.Set(k, v)
		}

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(400)
	})

	t.Run("unknown innovation", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/innovations/inv-missing/supports",
			bytes.NewBufferString(`{"status":"WAITING"}`))
		for k, v := range qualifyingAccessorHeaders() {
			req.Header.Set(k, v)
		}

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(404)
	})

	t.Run("duplicate record conflicts", func(t *testing.T) {
		for i, want := range []int{201, 409} {
			req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
				bytes.NewBufferString(`{"status":"WAITING"}`))
			for k, v := range qualifyingAccessorHeaders() {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)
			if rec.Code != want {
				t.Fatalf("request %d: expected %d, got %d", i, want, rec.Code)
			}
		}
	})
}

func TestServer_NotificationFlow(t *testing.T) {
	server, _ := newTestServer(t)

	// Creating an ENGAGING support notifies the innovation owner
	req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
		bytes.NewBufferString(`{"status":"ENGAGING"}`))
	for k, v := range qualifyingAccessorHeaders() {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(201)

	listUnread := func() []struct {
		ID string `json:"id"`
	} {
		req := httptest.NewRequest("GET", "/api/v1/notifications", nil)
		req.Header.Set("X-Innovaid-User-Id", "user-owner")
		req.Header.Set("X-Innovaid-User-Type", "INNOVATOR")

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(200)

		var resp struct {
			Notifications []struct {
				ID string `json:"id"`
			} `json:"notifications"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		return resp.Notifications
	}

	unread := listUnread()
	gt.A(t, unread).Length(1).Required()

	// Dismiss it
	req = httptest.NewRequest("PATCH", "/api/v1/notifications/"+unread[0].ID+"/read", nil)
	req.Header.Set("X-Innovaid-User-Id", "user-owner")
	req.Header.Set("X-Innovaid-User-Type", "INNOVATOR")
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(204)

	gt.A(t, listUnread()).Length(0)
}

func TestServer_ActivityAndLogViews(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/innovations/inv-1/supports",
		bytes.NewBufferString(`{"status":"ENGAGING","message":"starting"}`))
	for k, v := range qualifyingAccessorHeaders() {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(201)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("X-Innovaid-User-Id", "user-owner")
		req.Header.Set("X-Innovaid-User-Type", "INNOVATOR")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		return rec
	}

	rec = get("/api/v1/innovations/inv-1/activities?category=SUPPORT")
	gt.V(t, rec.Code).Equal(200)
	var activities struct {
		Activities []struct {
			Activity string `json:"activity"`
			Domain   string `json:"domain"`
		} `json:"activities"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities)).Required()
	gt.A(t, activities.Activities).Length(1)
	gt.V(t, activities.Activities[0].Activity).Equal("SUPPORT_STATUS_UPDATE")
	gt.V(t, activities.Activities[0].Domain).Equal("SUPPORT")

	gt.V(t, get("/api/v1/innovations/inv-1/activities?category=NOPE").Code).Equal(400)

	rec = get("/api/v1/innovations/inv-1/support-logs")
	gt.V(t, rec.Code).Equal(200)
	var logs struct {
		SupportLogs []struct {
			Type string `json:"type"`
		} `json:"supportLogs"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs)).Required()
	gt.A(t, logs.SupportLogs).Length(1)
	gt.V(t, logs.SupportLogs[0].Type).Equal("STATUS_UPDATE")

	rec = get("/api/v1/innovations/inv-1/comments")
	gt.V(t, rec.Code).Equal(200)
	var comments struct {
		Comments []struct {
			Message string `json:"message"`
		} `json:"comments"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments)).Required()
	gt.A(t, comments.Comments).Length(1)
	gt.V(t, comments.Comments[0].Message).Equal("starting")
}
