package models

import "strings"

// Normalize methods trim free-text fields in place so that validation sees
// the value that will be stored. A blank name then fails "required".

func trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Correo = email(in.Correo)
	in.Telefono = strings.TrimSpace(in.Telefono)
}

func (in *LoginInput) Normalize() {
	in.Correo = email(in.Correo)
}

func (p *UserPatch) Normalize() {
	p.Username = trim(p.Username)
	p.Telefono = trim(p.Telefono)
	if p.Correo != nil {
		v := email(*p.Correo)
		p.Correo = &v
	}
}

func (in *RestaurantInput) Normalize() {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Correo = strings.TrimSpace(in.Correo)
	in.Telefono = strings.TrimSpace(in.Telefono)
	in.Direccion = strings.TrimSpace(in.Direccion)
	in.City = strings.TrimSpace(in.City)
}

func (p *RestaurantPatch) Normalize() {
	p.Nombre = trim(p.Nombre)
	p.Correo = trim(p.Correo)
	p.Telefono = trim(p.Telefono)
	p.Direccion = trim(p.Direccion)
	p.City = trim(p.City)
}

func (in *CategoryInput) Normalize() {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.RestaurantID = strings.TrimSpace(in.RestaurantID)
}

func (p *CategoryPatch) Normalize() {
	p.Nombre = trim(p.Nombre)
}

func (in *ProductInput) Normalize() {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	in.CategoriaID = strings.TrimSpace(in.CategoriaID)
	in.RestauranteID = strings.TrimSpace(in.RestauranteID)
}

func (p *ProductPatch) Normalize() {
	p.Nombre = trim(p.Nombre)
	p.Descripcion = trim(p.Descripcion)
	p.CategoriaID = trim(p.CategoriaID)
}

func (in *OrderInput) Normalize() {
	in.RestauranteID = strings.TrimSpace(in.RestauranteID)
	in.Notas = strings.TrimSpace(in.Notas)
}

func (p *OrderPatch) Normalize() {
	p.Notas = trim(p.Notas)
}
