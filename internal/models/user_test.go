package models

import (
	"reflect"
	"testing"
)

func TestNewUser(t *testing.T) {
	type args struct {
		username     string
		email        string
		passwordHash string
	}
	tests := []struct {
		name string
		args args
		want *User
	}{
		{
			name: "Create new user with all fields",
			args: args{
				username:     "testuser",
				email:        "test@example.com",
				passwordHash: "digest",
			},
			want: &User{
				ID:           "", // ID is left empty for the store to populate
				Username:     "testuser",
				Email:        "test@example.com",
				PasswordHash: "digest",
			},
		},
		{
			name: "Create new user with empty fields",
			args: args{
				username:     "",
				email:        "",
				passwordHash: "",
			},
			want: &User{
				ID:           "",
				Username:     "",
				Email:        "",
				PasswordHash: "",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewUser(tt.args.username, tt.args.email, tt.args.passwordHash); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_Public(t *testing.T) {
	user := &User{
		ID:           "id-1",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "digest",
	}

	public := user.Public()
	if public.PasswordHash != "" {
		t.Error("Public() kept the password hash")
	}
	if public.ID != user.ID || public.Username != user.Username || public.Email != user.Email {
		t.Errorf("Public() = %+v, want identity fields of %+v", public, user)
	}
	if user.PasswordHash != "digest" {
		t.Error("Public() mutated the original user")
	}
}

func TestSessionUserFrom(t *testing.T) {
	user := &User{
		ID:           "id-1",
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "digest",
	}

	got := SessionUserFrom(user)
	want := SessionUser{Username: "testuser", Email: "test@example.com"}
	if got != want {
		t.Errorf("SessionUserFrom() = %+v, want %+v", got, want)
	}
}
