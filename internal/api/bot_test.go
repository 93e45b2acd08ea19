package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	app "wiring-inspector/internal/application"
	"wiring-inspector/internal/domain/entity"
)

func TestPhotoFileID(t *testing.T) {
	msg := &tgbotapi.Message{Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}}}
	require.Equal(t, "large", photoFileID(msg))

	msg = &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "doc", MimeType: "image/png"}}
	require.Equal(t, "doc", photoFileID(msg))

	msg = &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "doc", MimeType: "application/pdf"}}
	require.Empty(t, photoFileID(msg))

	require.Empty(t, photoFileID(&tgbotapi.Message{Text: "hi"}))
}

func TestCaption(t *testing.T) {
	out := &app.InspectionOutput{
		Report: &entity.WiringReport{
			ID:       "abc",
			Verdict:  entity.VerdictLeftSourceCorrect,
			Detected: 3,
			Inferred: true,
		},
		Description: &entity.Description{Text: "ok"},
	}

	text := caption(out)
	require.Contains(t, text, "ok")
	require.Contains(t, text, "Strands detected: 3 (+1 estimated)")
	require.Contains(t, text, "ID: abc")

	failed := &app.InspectionOutput{Description: &entity.Description{Text: "check visually"}}
	require.Equal(t, "check visually", caption(failed))
}

func TestStatusText(t *testing.T) {
	u := entity.NewUser(1, 1)
	require.Equal(t, msgNoInspections, statusText(u))

	u.RecordInspection(entity.VerdictRightSourceCorrect)
	require.Contains(t, statusText(u), "right_source_correct")
	require.Contains(t, statusText(u), "Checks done: 1")
}
