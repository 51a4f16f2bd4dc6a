package collection

// ConvertToUnit converts the collection to the given unit in place,
// replacing the values and updating the header's unit. The conversion
// is not reversible without the original unit.
func (c *Collection) ConvertToUnit(unit string) error {
	if !c.mutable {
		return c.immutableError()
	}
	return c.convertToUnit(unit)
}

// ConvertToIP converts the collection to IP units in place. The target
// unit is determined by the data type, not the caller.
func (c *Collection) ConvertToIP() error {
	if !c.mutable {
		return c.immutableError()
	}
	values, unit, err := c.header.DataType().ToIP(c.values, c.header.Unit())
	if err != nil {
		return err
	}
	c.values = values
	c.header.SetUnit(unit)
	return nil
}

// ConvertToSI converts the collection to SI units in place.
func (c *Collection) ConvertToSI() error {
	if !c.mutable {
		return c.immutableError()
	}
	values, unit, err := c.header.DataType().ToSI(c.values, c.header.Unit())
	if err != nil {
		return err
	}
	c.values = values
	c.header.SetUnit(unit)
	return nil
}

// convertToUnit performs the in-place conversion without the mutability
// gate, for use on freshly duplicated intermediates.
func (c *Collection) convertToUnit(unit string) error {
	values, err := c.header.DataType().ToUnit(c.values, unit, c.header.Unit())
	if err != nil {
		return err
	}
	c.values = values
	c.header.SetUnit(unit)
	return nil
}

// ToUnit returns a new collection in the given unit, leaving this one
// untouched. The result keeps this collection's mutability.
func (c *Collection) ToUnit(unit string) (*Collection, error) {
	dup := c.Duplicate()
	if err := dup.convertToUnit(unit); err != nil {
		return nil, err
	}
	return dup, nil
}

// ToIP returns a new collection in IP units, leaving this one untouched.
func (c *Collection) ToIP() (*Collection, error) {
	dup := c.Duplicate()
	values, unit, err := dup.header.DataType().ToIP(dup.values, dup.header.Unit())
	if err != nil {
		return nil, err
	}
	dup.values = values
	dup.header.SetUnit(unit)
	return dup, nil
}

// ToSI returns a new collection in SI units, leaving this one untouched.
func (c *Collection) ToSI() (*Collection, error) {
	dup := c.Duplicate()
	values, unit, err := dup.header.DataType().ToSI(dup.values, dup.header.Unit())
	if err != nil {
		return nil, err
	}
	dup.values = values
	dup.header.SetUnit(unit)
	return dup, nil
}

// IsInDataTypeRange reports whether all values are physically possible
// for the header's data type and unit. When they are not, the error
// describes the first offending value.
func (c *Collection) IsInDataTypeRange() (bool, error) {
	return c.header.DataType().IsInRange(c.values, c.header.Unit())
}
