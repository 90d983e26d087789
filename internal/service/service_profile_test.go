package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/mock"
	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFolder = "Test/Profiles"

type profileMocks struct {
	repo    *mock.MockUserRepository
	media   *mock.MockMediaStorage
	cleaner *mock.MockMediaCleaner
}

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (ProfileService, profileMocks) {
	t.Helper()

	m := profileMocks{
		repo:    mock.NewMockUserRepository(ctrl),
		media:   mock.NewMockMediaStorage(ctrl),
		cleaner: mock.NewMockMediaCleaner(ctrl),
	}
	svc := NewProfileService(m.repo, m.media, m.cleaner, config.Media{Folder: testFolder}, logger.Nop())

	return svc, m
}

func testMediaFile() *models.MediaFile {
	return &models.MediaFile{Content: strings.NewReader("png-bytes"), FileName: "me.png", Size: 9, ContentType: "image/png"}
}

func TestProfileService_UpdateProfile_BioOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), Bio: "old"}
	bio := "hello"

	gomock.InOrder(
		m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil),
		m.repo.EXPECT().UpdateBio(ctx, user.ID, "hello").Return(nil),
		m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(models.User{ID: user.ID, Bio: "hello"}, nil),
	)

	got, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Bio)
}

func TestProfileService_UpdateProfile_EmptyBioIsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), Bio: "old"}
	bio := ""

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	m.repo.EXPECT().UpdateBio(ctx, user.ID, "").Return(nil)
	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(models.User{ID: user.ID}, nil)

	got, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Empty(t, got.Bio)
}

func TestProfileService_UpdateProfile_SwapsImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), ProfilePic: "https://cdn/old.png", PublicID: "old"}
	uploaded := models.Media{SecureURL: "https://cdn/new.png", PublicID: "new"}
	file := testMediaFile()

	gomock.InOrder(
		m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil),
		m.media.EXPECT().Upload(ctx, testFolder, *file).Return(uploaded, nil),
		m.repo.EXPECT().UpdateProfilePic(ctx, user.ID, uploaded).Return(nil),
		m.media.EXPECT().Destroy(ctx, "old").Return(nil),
		m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(models.User{ID: user.ID, ProfilePic: uploaded.SecureURL, PublicID: "new"}, nil),
	)

	got, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: file})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.png", got.ProfilePic)
}

func TestProfileService_UpdateProfile_FirstImageDestroysNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New()}
	uploaded := models.Media{SecureURL: "https://cdn/new.png", PublicID: "new"}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil).Times(2)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(uploaded, nil)
	m.repo.EXPECT().UpdateProfilePic(ctx, user.ID, uploaded).Return(nil)
	m.media.EXPECT().Destroy(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: testMediaFile()})
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_OldImageDestroyFails_Enqueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), PublicID: "old"}
	uploaded := models.Media{SecureURL: "https://cdn/new.png", PublicID: "new"}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil).Times(2)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(uploaded, nil)
	m.repo.EXPECT().UpdateProfilePic(ctx, user.ID, uploaded).Return(nil)
	m.media.EXPECT().Destroy(ctx, "old").Return(errors.New("timeout"))
	m.cleaner.EXPECT().Enqueue("old")

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: testMediaFile()})
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_UploadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), PublicID: "old"}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(models.Media{}, store.ErrMediaUpload)
	m.repo.EXPECT().UpdateProfilePic(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.media.EXPECT().Destroy(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: testMediaFile()})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestProfileService_UpdateProfile_EmptyUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New()}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(models.Media{}, store.ErrEmptyMedia)

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: &models.MediaFile{}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProfileService_UpdateProfile_PersistFails_DestroysNewUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), PublicID: "old"}
	uploaded := models.Media{SecureURL: "https://cdn/new.png", PublicID: "new"}
	dbErr := errors.New("db down")

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(uploaded, nil)
	m.repo.EXPECT().UpdateProfilePic(ctx, user.ID, uploaded).Return(dbErr)
	m.media.EXPECT().Destroy(ctx, "new").Return(nil)

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: testMediaFile()})
	assert.ErrorIs(t, err, dbErr)
}

func TestProfileService_UpdateProfile_PersistAndCompensationFail_Enqueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New()}
	uploaded := models.Media{SecureURL: "https://cdn/new.png", PublicID: "new"}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, testFolder, gomock.Any()).Return(uploaded, nil)
	m.repo.EXPECT().UpdateProfilePic(ctx, user.ID, uploaded).Return(store.ErrNoUserWasFound)
	m.media.EXPECT().Destroy(ctx, "new").Return(errors.New("timeout"))
	m.cleaner.EXPECT().Enqueue("new")

	_, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Media: testMediaFile()})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	m.repo.EXPECT().FindUserByID(ctx, id).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UpdateProfile(ctx, id, models.ProfileUpdate{Media: testMediaFile()})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_UpdateProfile_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: uuid.New(), Bio: "same"}

	m.repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil).Times(2)

	got, err := svc.UpdateProfile(ctx, user.ID, models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "same", got.Bio)
}
