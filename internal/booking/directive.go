package booking

import "github.com/wurt83ow/bookmovie-bot/internal/models"

// Конструкторы директив. Каждый заполняет только поля своего вида действия.

func ElicitSlot(attrs models.Attributes, intentName string, slots models.Slots, slot string, msg *models.Message) models.Response {
	return models.Response{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:         models.ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slot,
			Message:      msg,
		},
	}
}

func ConfirmIntent(attrs models.Attributes, intentName string, slots models.Slots, msg *models.Message) models.Response {
	return models.Response{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:       models.ActionConfirmIntent,
			IntentName: intentName,
			Slots:      slots,
			Message:    msg,
		},
	}
}

func Close(attrs models.Attributes, state models.FulfillmentState, msg *models.Message) models.Response {
	return models.Response{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:             models.ActionClose,
			FulfillmentState: state,
			Message:          msg,
		},
	}
}

func Delegate(attrs models.Attributes, slots models.Slots) models.Response {
	return models.Response{
		SessionAttributes: attrs,
		DialogAction: models.DialogAction{
			Type:  models.ActionDelegate,
			Slots: slots,
		},
	}
}
