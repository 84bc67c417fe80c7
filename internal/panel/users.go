// ABOUTME: Users panel: list, create, update, and soft-delete user records
// ABOUTME: Non-admins see only their own record, fetched via the by-id endpoint

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// UsersPanel owns the users collection.
type UsersPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	users []model.User
}

// NewUsersPanel creates the panel.
func NewUsersPanel(client *api.Client, sess Session, notify Notifier) *UsersPanel {
	return &UsersPanel{api: client, session: sess, notify: notify}
}

// Users returns the current collection in server order.
func (p *UsersPanel) Users() []model.User {
	return p.users
}

// Load replaces the collection wholesale. Administrators fetch the full
// collection; everyone else fetches only their own record by id.
func (p *UsersPanel) Load(ctx context.Context) error {
	op := p.session.Operator()

	if op.IsAdmin {
		env, err := p.api.Request(ctx, "/users/", api.RequestOptions{Credential: p.session.Credential()})
		if err != nil {
			p.notify.Error("%s", err)
			return err
		}
		var data struct {
			Items []model.User `json:"items"`
		}
		if err := env.DecodeData(&data); err != nil {
			p.notify.Error("%s", err)
			return err
		}
		p.users = data.Items
		return nil
	}

	env, err := p.api.Request(ctx, fmt.Sprintf("/users/%d", op.ID), api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		User model.User `json:"user"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.users = []model.User{data.User}
	return nil
}

// UserCreate is the create-user form.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Create saves a new user. Administrators use the authenticated create
// endpoint and may grant admin rights; everyone else goes through open
// registration with is_admin forced false.
func (p *UsersPanel) Create(ctx context.Context, in UserCreate) error {
	op := p.session.Operator()

	path := "/users/register"
	opts := api.RequestOptions{Method: http.MethodPost}
	if op.IsAdmin {
		path = "/users/"
		opts.Credential = p.session.Credential()
	} else {
		in.IsAdmin = false
	}
	opts.Payload = in

	env, err := p.api.Request(ctx, path, opts)
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		UserID int64 `json:"user_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("User saved with ID %d", data.UserID)
	return p.Load(ctx)
}

// Update sends only the fields the operator changed.
func (p *UsersPanel) Update(ctx context.Context, userID int64, in UserUpdate) error {
	body := BuildUserUpdate(p.session.Operator().IsAdmin, in)

	_, err := p.api.Request(ctx, fmt.Sprintf("/users/%d", userID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    body,
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("User updated")
	return p.Load(ctx)
}

// Delete soft-deletes a user; the record stays visible with is_active
// false after the reload.
func (p *UsersPanel) Delete(ctx context.Context, userID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/users/%d", userID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("User soft deleted")
	return p.Load(ctx)
}
