package assistant

import (
	"context"
	"testing"

	"chcrent/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply        *ModelReply
	err          error
	gotPrompt    string
	gotUtterance string
	calls        int
}

func (f *fakeModel) RequestIntent(ctx context.Context, systemPrompt, utterance string) (*ModelReply, error) {
	f.calls++
	f.gotPrompt = systemPrompt
	f.gotUtterance = utterance
	return f.reply, f.err
}

func catalog() []models.EquipmentOption {
	return []models.EquipmentOption{
		{ID: "eq-1", Name: "Tractor with Rotavator", Rent: 500},
		{ID: "eq-2", Name: "Seeder", Rent: 200},
	}
}

func TestResolveEmptySnapshot(t *testing.T) {
	model := &fakeModel{}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "book a tractor", nil)
	assert.False(t, in.book)
	assert.Equal(t, "I'm still loading the equipment list. Please wait a moment and try again.", in.reply)
	assert.Zero(t, model.calls, "model must not be consulted without a catalog")
}

func TestResolveModelTransportError(t *testing.T) {
	model := &fakeModel{err: assert.AnError}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "book a tractor", catalog())
	assert.False(t, in.book)
	assert.Equal(t, "I couldn't reach the assistant service. Please check your connection and try again.", in.reply)
}

func TestResolveBookingCall(t *testing.T) {
	model := &fakeModel{reply: &ModelReply{
		Call: &BookingCall{EquipmentName: "Tractor with Rotavator", BookingHrs: 3},
	}}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "book the tractor for 3 hours", catalog())
	require.True(t, in.book)
	assert.Equal(t, "eq-1", in.equipmentID)
	assert.Equal(t, "Tractor with Rotavator", in.equipmentName)
	assert.Equal(t, 3, in.hours)
	assert.Equal(t, "book the tractor for 3 hours", model.gotUtterance)
}

func TestResolveMatchesCaseInsensitively(t *testing.T) {
	model := &fakeModel{reply: &ModelReply{
		Call: &BookingCall{EquipmentName: "  seeder ", BookingHrs: 2},
	}}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "rent a seeder for 2 hours", catalog())
	require.True(t, in.book)
	assert.Equal(t, "eq-2", in.equipmentID)
}

func TestResolveUnknownEquipment(t *testing.T) {
	model := &fakeModel{reply: &ModelReply{
		Call: &BookingCall{EquipmentName: "Backhoe", BookingHrs: 2},
	}}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "book a backhoe", catalog())
	assert.False(t, in.book)
	assert.Equal(t, `I couldn't find equipment named "Backhoe". Please check the available equipment list.`, in.reply)
}

func TestResolveOutOfRangeHours(t *testing.T) {
	for _, hours := range []int{0, -1, 25} {
		model := &fakeModel{reply: &ModelReply{
			Call: &BookingCall{EquipmentName: "Seeder", BookingHrs: hours},
		}}
		svc := &DefaultAssistantService{Model: model}

		in := svc.resolve(context.Background(), "book a seeder", catalog())
		assert.False(t, in.book, "hours=%d", hours)
		assert.Contains(t, in.reply, "How many hours would you like to book Seeder for?")
	}
}

func TestResolveTextReplyIsVerbatim(t *testing.T) {
	model := &fakeModel{reply: &ModelReply{Text: "We have a Tractor and a Seeder available."}}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "what is available?", catalog())
	assert.False(t, in.book)
	assert.Equal(t, "We have a Tractor and a Seeder available.", in.reply)
}

func TestResolveUnclearReply(t *testing.T) {
	model := &fakeModel{reply: &ModelReply{}}
	svc := &DefaultAssistantService{Model: model}

	in := svc.resolve(context.Background(), "hmm", catalog())
	assert.False(t, in.book)
	assert.Equal(t, "I received an unclear response. Please try rephrasing your request.", in.reply)
}

func TestBuildSystemPromptEnumeratesCatalog(t *testing.T) {
	prompt := buildSystemPrompt(catalog())
	assert.Contains(t, prompt, "1. Tractor with Rotavator - ₹500/hr")
	assert.Contains(t, prompt, "2. Seeder - ₹200/hr")
	assert.Contains(t, prompt, "createOrder")
}
