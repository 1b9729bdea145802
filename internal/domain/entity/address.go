package entity

// AddressMutation changes one field of an Address in place.
type AddressMutation func(*Address)

// SetCity replaces the city.
func SetCity(city string) AddressMutation {
	return func(a *Address) { a.City = city }
}

// SetStreet replaces the street.
func SetStreet(street string) AddressMutation {
	return func(a *Address) { a.Street = street }
}

// SetHouseNumber replaces the house number.
func SetHouseNumber(houseNumber string) AddressMutation {
	return func(a *Address) { a.HouseNumber = houseNumber }
}

// SetApartmentNumber replaces the apartment number.
func SetApartmentNumber(apartmentNumber string) AddressMutation {
	return func(a *Address) { a.ApartmentNumber = apartmentNumber }
}
