package entity

// seedData lists regions north to south with a selection of their comunas.
var seedData = []struct {
	nombre  string
	comunas []string
}{
	{"Arica y Parinacota", []string{"Arica", "Camarones", "Putre", "General Lagos"}},
	{"Tarapacá", []string{"Iquique", "Alto Hospicio", "Pozo Almonte", "Pica"}},
	{"Antofagasta", []string{"Antofagasta", "Mejillones", "Calama", "Tocopilla", "San Pedro de Atacama"}},
	{"Atacama", []string{"Copiapó", "Caldera", "Vallenar", "Chañaral"}},
	{"Coquimbo", []string{"La Serena", "Coquimbo", "Ovalle", "Illapel", "Vicuña"}},
	{"Valparaíso", []string{"Valparaíso", "Viña del Mar", "Quilpué", "Villa Alemana", "San Antonio", "Quillota", "Los Andes"}},
	{"Metropolitana de Santiago", []string{
		"Santiago", "Providencia", "Las Condes", "Ñuñoa", "La Florida", "Maipú",
		"Puente Alto", "Vitacura", "Lo Barnechea", "La Reina", "Macul", "Peñalolén",
		"San Miguel", "Estación Central", "Recoleta", "Independencia", "Quilicura", "San Bernardo",
	}},
	{"Libertador General Bernardo O'Higgins", []string{"Rancagua", "Machalí", "San Fernando", "Rengo", "Pichilemu"}},
	{"Maule", []string{"Talca", "Curicó", "Linares", "Constitución", "Cauquenes"}},
	{"Ñuble", []string{"Chillán", "Chillán Viejo", "San Carlos", "Bulnes"}},
	{"Biobío", []string{"Concepción", "Talcahuano", "San Pedro de la Paz", "Chiguayante", "Los Ángeles", "Coronel"}},
	{"La Araucanía", []string{"Temuco", "Padre Las Casas", "Villarrica", "Pucón", "Angol"}},
	{"Los Ríos", []string{"Valdivia", "La Unión", "Panguipulli", "Río Bueno"}},
	{"Los Lagos", []string{"Puerto Montt", "Puerto Varas", "Osorno", "Castro", "Ancud"}},
	{"Aysén del General Carlos Ibáñez del Campo", []string{"Coyhaique", "Aysén", "Chile Chico"}},
	{"Magallanes y de la Antártica Chilena", []string{"Punta Arenas", "Puerto Natales", "Porvenir", "Cabo de Hornos"}},
}

// SeedRegions returns the reference regions with stable ids. Region ids follow
// their order and comuna ids are numbered across all regions, so reseeding
// yields the same rows.
func SeedRegions() []Region {
	regions := make([]Region, 0, len(seedData))
	var comunaID uint
	for i, r := range seedData {
		region := Region{ID: uint(i + 1), Nombre: r.nombre, Orden: i + 1}
		for _, name := range r.comunas {
			comunaID++
			region.Comunas = append(region.Comunas, Comuna{ID: comunaID, Nombre: name, RegionID: region.ID})
		}
		regions = append(regions, region)
	}
	return regions
}
