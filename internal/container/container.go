package container

import (
	app "wiring-inspector/internal/application"
	"wiring-inspector/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, segmenter port.StrandSegmenter, processor port.ImageProcessor, describer port.VerdictDescriber, imageSize int) *Container {
	userService := app.NewUserService(userRepo)
	inspectionService := app.NewInspectionService(userService, segmenter, processor, describer, imageSize)

	return &Container{
		UserService:       userService,
		InspectionService: inspectionService,
	}
}
