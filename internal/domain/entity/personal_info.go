package entity

// PersonalInfoMutation changes one field of a PersonalInfo in place.
type PersonalInfoMutation func(*PersonalInfo)

func SetFirstName(firstName string) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.FirstName = firstName }
}

func SetSurname(surname string) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.Surname = surname }
}

func SetPersonalIdentificationNumber(pin string) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.PersonalIdentificationNumber = pin }
}

func SetPhoneNumber(phoneNumber string) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.PhoneNumber = phoneNumber }
}

func SetEmail(email string) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.Email = email }
}

// SetProfilePicture stores already-processed image bytes.
func SetProfilePicture(picture []byte) PersonalInfoMutation {
	return func(p *PersonalInfo) { p.ProfilePicture = picture }
}
