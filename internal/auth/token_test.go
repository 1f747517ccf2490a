// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "admin", identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(uuid.New(), "editor")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	token, err := issuer.Issue(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityIsAdmin(t *testing.T) {
	var nilIdentity *Identity
	assert.False(t, nilIdentity.IsAdmin())
	assert.False(t, (&Identity{Role: "editor"}).IsAdmin())
	assert.True(t, (&Identity{Role: "admin"}).IsAdmin())
}
