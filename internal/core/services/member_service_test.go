package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember_ByAdmin(t *testing.T) {
	store := newMemStore()
	svc := services.NewMemberService(store)
	phone := " +91 98450 00000 "

	member, err := svc.CreateMember(context.Background(), dto.CreateMemberRequest{
		Name: " Ravi ", Email: "Ravi@Example.com", Password: "password123", Phone: &phone,
	}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "Ravi", member.Name)
	assert.Equal(t, "ravi@example.com", member.Email)
	require.NotNil(t, member.Phone)
	assert.Equal(t, "+91 98450 00000", *member.Phone)
	assert.Equal(t, "admin-1", member.CreatedBy)
	assert.True(t, member.GoldHoldings.IsZero())
}

func TestCreateMember_PasswordPolicy(t *testing.T) {
	svc := services.NewMemberService(newMemStore())

	_, err := svc.CreateMember(context.Background(), dto.CreateMemberRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "short",
	}, "admin-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetMemberByID_NotFound(t *testing.T) {
	svc := services.NewMemberService(newMemStore())

	_, err := svc.GetMemberByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMembers_FilterAndPage(t *testing.T) {
	store := newMemStore()
	svc := services.NewMemberService(store)
	for i, id := range []string{"a", "b", "c"} {
		store.addMember(id, "0", domain.MemberActive)
		m := store.members[id]
		m.CreatedAt = fixedNow.Add(time.Duration(i) * time.Minute)
		store.members[id] = m
	}
	store.addMember("s", "0", domain.MemberSuspended)

	members, total, err := svc.ListMembers(context.Background(), dto.ListMembersParams{
		PageParams: dto.PageParams{Limit: 2, Offset: 0},
		Status:     domain.MemberActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, members, 2)
	assert.Equal(t, "c", members[0].MemberID, "newest first")

	_, _, err = svc.ListMembers(context.Background(), dto.ListMembersParams{
		PageParams: dto.PageParams{Limit: 2},
		Status:     "BANNED",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMemberStatus_SuspendRevokesRefreshToken(t *testing.T) {
	store := newMemStore()
	svc := services.NewMemberService(store)
	ctx := context.Background()
	store.addMember("m1", "4", domain.MemberActive)
	require.NoError(t, store.UpdateMemberRefreshToken(ctx, "m1", "hash", fixedNow.Add(time.Hour)))

	member, err := svc.UpdateMemberStatus(ctx, "m1", domain.MemberSuspended, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, domain.MemberSuspended, member.Status)
	assert.Equal(t, "admin-1", member.LastUpdatedBy)
	assert.Empty(t, member.RefreshTokenHash)
	assert.True(t, member.GoldHoldings.Equal(store.holdings("m1")), "holdings survive suspension")

	member, err = svc.UpdateMemberStatus(ctx, "m1", domain.MemberActive, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, domain.MemberActive, member.Status)
}

func TestUpdateMemberStatus_Errors(t *testing.T) {
	svc := services.NewMemberService(newMemStore())
	ctx := context.Background()

	_, err := svc.UpdateMemberStatus(ctx, "missing", domain.MemberSuspended, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.UpdateMemberStatus(ctx, "missing", "DELETED", "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
