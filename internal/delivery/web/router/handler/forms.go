package handler

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Redirect string `form:"redirect"`
}

type registerForm struct {
	Name            string `form:"name" validate:"notblank,max=64"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
	Phone           string `form:"phone" validate:"omitempty,phone"`
	Redirect        string `form:"redirect"`
}

type contactForm struct {
	Name   string `form:"name" validate:"max=64"`
	Phone  string `form:"phone" validate:"required,phone"`
	Return string `form:"return"`
}

type addressForm struct {
	RecipientName  string `form:"recipient_name" validate:"notblank,max=64"`
	RecipientPhone string `form:"recipient_phone" validate:"required,phone"`
	Province       string `form:"province" validate:"notblank,max=64"`
	City           string `form:"city" validate:"notblank,max=64"`
	District       string `form:"district" validate:"notblank,max=64"`
	Detail         string `form:"detail" validate:"notblank,max=200"`
	PostalCode     string `form:"postal_code" validate:"max=16"`
	IsDefault      bool   `form:"is_default"`
	Tag            string `form:"tag" validate:"omitempty,oneof=home work other"`
	Return         string `form:"return"`
}

var addressFields = []string{"recipient_name", "recipient_phone", "province", "city", "district", "detail", "postal_code", "tag", "is_default"}

type sizeForm struct {
	SockSize string `form:"sock_size" validate:"required,oneof=S M L XL"`
	ShoeSize string `form:"shoe_size" validate:"max=16"`
	Return   string `form:"return"`
}

type returnForm struct {
	Return string `form:"return"`
}

type subscriptionForm struct {
	PlanCode  string `form:"plan_code" validate:"required"`
	Frequency string `form:"frequency" validate:"required,oneof=monthly bimonthly quarterly"`
	Size      string `form:"size" validate:"omitempty,oneof=S M L XL"`
	Note      string `form:"note" validate:"max=200"`
	AddressID int64  `form:"address_id"`
	AutoRenew bool   `form:"auto_renew"`
}

type preferencesForm struct {
	Frequency string `form:"frequency" validate:"required,oneof=monthly bimonthly quarterly"`
	Size      string `form:"size" validate:"required,oneof=S M L XL"`
	Note      string `form:"note" validate:"max=200"`
}

type payForm struct {
	Method string `form:"method" validate:"omitempty,oneof=alipay wechat"`
}

type profileForm struct {
	Name     string `form:"name" validate:"notblank,max=64"`
	Phone    string `form:"phone" validate:"omitempty,phone"`
	SockSize string `form:"sock_size" validate:"omitempty,oneof=S M L XL"`
	ShoeSize string `form:"shoe_size" validate:"max=16"`
	Notes    string `form:"notes" validate:"max=200"`
}

type passwordForm struct {
	CurrentPassword    string `form:"current_password" validate:"required"`
	NewPassword        string `form:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
	NewPasswordConfirm string `form:"new_password_confirm" validate:"eqfield=NewPassword"`
}
