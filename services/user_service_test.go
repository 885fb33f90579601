package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

func TestUserService_ResolveActorName_UsesCachedDisplayName(t *testing.T) {
	store := newFakeUserStore()
	store.users["maria@nexus.com"] = &models.UserInfo{Email: "maria@nexus.com", Username: "María G."}
	service := NewUserService(store)

	assert.Equal(t, "María G.", service.ResolveActorName("maria@nexus.com"))
	// Nothing needed to be derived or cached
	assert.Empty(t, store.upserted)
}

func TestUserService_ResolveActorName_DerivesFromEmailAndCaches(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)

	name := service.ResolveActorName("maria@nexus.com")

	assert.Equal(t, "Maria", name)
	assert.Equal(t, "Maria", store.upserted["maria@nexus.com"])
}

func TestUserService_ResolveActorName_FallsBackToLatestUser(t *testing.T) {
	store := newFakeUserStore()
	store.latest = &models.UserInfo{Email: "jose@nexus.com", Username: "José"}
	service := NewUserService(store)

	assert.Equal(t, "José", service.ResolveActorName(""))
}

func TestUserService_ResolveActorName_SentinelWhenNothingKnown(t *testing.T) {
	service := NewUserService(newFakeUserStore())

	assert.Equal(t, utils.SentinelActor, service.ResolveActorName(""))
	assert.Equal(t, utils.SentinelActor, service.ResolveActorName("   "))
}

func TestUserService_SaveUserInfo(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)

	err := service.SaveUserInfo(&models.SaveUserInfoRequest{
		Email:    "maria@nexus.com",
		Username: "María G.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "María G.", store.upserted["maria@nexus.com"])
}

func TestUserService_SaveUserInfo_RejectsBadInput(t *testing.T) {
	service := NewUserService(newFakeUserStore())

	assert.Error(t, service.SaveUserInfo(&models.SaveUserInfoRequest{
		Email:    "not-an-email",
		Username: "María",
	}))
	assert.Error(t, service.SaveUserInfo(&models.SaveUserInfoRequest{
		Email:    "maria@nexus.com",
		Username: "",
	}))
}
