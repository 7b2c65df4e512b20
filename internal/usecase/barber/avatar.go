package barber

import (
	"context"
	"io"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/infra/storage"
	"github.com/BruksfildServices01/softbarber/internal/media"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type UploadAvatar struct {
	users   user.Repository
	objects storage.ObjectStorage
	audit   audit.Recorder
}

func NewUploadAvatar(
	users user.Repository,
	objects storage.ObjectStorage,
	audit audit.Recorder,
) *UploadAvatar {
	return &UploadAvatar{
		users:   users,
		objects: objects,
		audit:   audit,
	}
}

func (uc *UploadAvatar) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	image io.Reader,
) (*models.User, error) {

	u, err := loadBarber(ctx, uc.users, id)
	if err != nil {
		return nil, err
	}

	body, err := media.ProcessAvatar(image)
	if err != nil {
		return nil, err
	}

	url, err := uc.objects.Put(ctx, media.AvatarKey(u.ID), media.AvatarContentType, body)
	if err != nil {
		return nil, err
	}

	u.AvatarURL = url
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_avatar_uploaded",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
