// Package dto defines the JSON shapes of the address endpoints.
package dto

import "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/domain/entity"

// AddressRequest is the body of POST and PUT /api/direcciones.
type AddressRequest struct {
	Calle        string  `json:"calle" binding:"required,notblank,max=200"`
	Numero       string  `json:"numero" binding:"required,notblank,max=20"`
	Departamento *string `json:"departamento" binding:"omitempty,max=50"`
	IDComuna     uint    `json:"idComuna" binding:"required,gt=0"`
}

// AddressResponse is one address of the session user.
type AddressResponse struct {
	IDDireccion  uint    `json:"idDireccion"`
	Calle        string  `json:"calle"`
	Numero       string  `json:"numero"`
	Departamento *string `json:"departamento"`
	IDComuna     uint    `json:"idComuna"`
	Comuna       string  `json:"comuna,omitempty"`
	IDRegion     uint    `json:"idRegion,omitempty"`
}

// NewAddressResponse converts a.
func NewAddressResponse(a entity.Address) AddressResponse {
	resp := AddressResponse{
		IDDireccion:  a.ID,
		Calle:        a.Calle,
		Numero:       a.Numero,
		Departamento: a.Departamento,
		IDComuna:     a.ComunaID,
	}
	if a.Comuna != nil {
		resp.Comuna = a.Comuna.Nombre
		resp.IDRegion = a.Comuna.RegionID
	}
	return resp
}

// NewAddressList converts addrs; the result is never nil.
func NewAddressList(addrs []entity.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, NewAddressResponse(a))
	}
	return out
}

// ComunaItem is a comuna inside a RegionItem.
type ComunaItem struct {
	IDComuna uint   `json:"idComuna"`
	Nombre   string `json:"nombre"`
}

// RegionItem is a region with its comunas.
type RegionItem struct {
	IDRegion uint         `json:"idRegion"`
	Nombre   string       `json:"nombre"`
	Comunas  []ComunaItem `json:"comunas"`
}

// NewRegionList converts regions; the result is never nil.
func NewRegionList(regions []entity.Region) []RegionItem {
	out := make([]RegionItem, 0, len(regions))
	for _, r := range regions {
		item := RegionItem{IDRegion: r.ID, Nombre: r.Nombre, Comunas: make([]ComunaItem, 0, len(r.Comunas))}
		for _, c := range r.Comunas {
			item.Comunas = append(item.Comunas, ComunaItem{IDComuna: c.ID, Nombre: c.Nombre})
		}
		out = append(out, item)
	}
	return out
}
