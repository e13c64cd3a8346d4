package domain

// Editable fields are explicit tagged variants dispatched through a switch,
// one enum per entity, so an unknown field is rejected at the boundary
// instead of silently writing a stray key.

type BusinessField string

const (
	BusinessFieldName    BusinessField = "name"
	BusinessFieldWebsite BusinessField = "website"
	BusinessFieldPhone   BusinessField = "phone"
	BusinessFieldAddress BusinessField = "address"
	BusinessFieldLogoURL BusinessField = "logo_url"
)

type ClientField string

const (
	ClientFieldName     ClientField = "name"
	ClientFieldPhone    ClientField = "phone"
	ClientFieldAddress  ClientField = "address"
	ClientFieldFacebook ClientField = "facebook"
)

type PaymentField string

const (
	PaymentFieldMethod        PaymentField = "method"
	PaymentFieldBankName      PaymentField = "bank_name"
	PaymentFieldAccountName   PaymentField = "account_name"
	PaymentFieldAccountNumber PaymentField = "account_number"
	PaymentFieldRoutingNumber PaymentField = "routing_number"
)

type DeliveryField string

const (
	DeliveryFieldCarrierName    DeliveryField = "carrier_name"
	DeliveryFieldCarrierLogo    DeliveryField = "carrier_logo"
	DeliveryFieldTrackingNumber DeliveryField = "tracking_number"
	DeliveryFieldCODAmount      DeliveryField = "cod_amount"
)

type ItemField string

const (
	ItemFieldDescription ItemField = "description"
	ItemFieldPrice       ItemField = "price"
)

// SetBusinessField returns a copy of the invoice with one issuer field
// replaced.
func SetBusinessField(inv Invoice, field BusinessField, value string) (Invoice, error) {
	switch field {
	case BusinessFieldName:
		inv.Business.Name = value
	case BusinessFieldWebsite:
		inv.Business.Website = value
	case BusinessFieldPhone:
		inv.Business.Phone = value
	case BusinessFieldAddress:
		inv.Business.Address = value
	case BusinessFieldLogoURL:
		inv.Business.LogoURL = value
	default:
		return inv, ErrInvalidField
	}
	return inv, nil
}

// SetClientField returns a copy of the invoice with one client field
// replaced.
func SetClientField(inv Invoice, field ClientField, value string) (Invoice, error) {
	switch field {
	case ClientFieldName:
		inv.Client.Name = value
	case ClientFieldPhone:
		inv.Client.Phone = value
	case ClientFieldAddress:
		inv.Client.Address = value
	case ClientFieldFacebook:
		inv.Client.Facebook = value
	default:
		return inv, ErrInvalidField
	}
	return inv, nil
}

// SetPaymentField returns a copy of the invoice with one payment field
// replaced. Switching methods keeps the inactive method's fields so the
// user can toggle back without retyping them.
func SetPaymentField(inv Invoice, field PaymentField, value string) (Invoice, error) {
	switch field {
	case PaymentFieldMethod:
		switch PaymentMethod(value) {
		case MethodBankTransfer, MethodCashOnDelivery:
			inv.Payment.Method = PaymentMethod(value)
		default:
			return inv, ErrInvalidField
		}
	case PaymentFieldBankName:
		inv.Payment.BankName = value
	case PaymentFieldAccountName:
		inv.Payment.AccountName = value
	case PaymentFieldAccountNumber:
		inv.Payment.AccountNumber = value
	case PaymentFieldRoutingNumber:
		inv.Payment.RoutingNumber = value
	default:
		return inv, ErrInvalidField
	}
	return inv, nil
}

// SetDeliveryField returns a copy of the invoice with one delivery field
// replaced.
func SetDeliveryField(inv Invoice, field DeliveryField, value string) (Invoice, error) {
	switch field {
	case DeliveryFieldCarrierName:
		inv.Delivery.CarrierName = value
	case DeliveryFieldCarrierLogo:
		inv.Delivery.CarrierLogo = value
	case DeliveryFieldTrackingNumber:
		inv.Delivery.TrackingNumber = value
	case DeliveryFieldCODAmount:
		inv.Delivery.CODAmount = value
	default:
		return inv, ErrInvalidField
	}
	return inv, nil
}
