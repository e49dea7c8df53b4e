package locations

import "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"

// directory встроенный справочник мест рождения, порядок важен для поиска
var directory = []domain.Location{
	{ID: "madrid", Name: "Madrid", Country: "España", Latitude: 40.4168, Longitude: -3.7038},
	{ID: "barcelona", Name: "Barcelona", Country: "España", Latitude: 41.3874, Longitude: 2.1686},
	{ID: "valencia", Name: "Valencia", Country: "España", Latitude: 39.4699, Longitude: -0.3763},
	{ID: "sevilla", Name: "Sevilla", Country: "España", Latitude: 37.3891, Longitude: -5.9845},
	{ID: "malaga", Name: "Málaga", Country: "España", Latitude: 36.7213, Longitude: -4.4214},
	{ID: "bilbao", Name: "Bilbao", Country: "España", Latitude: 43.2630, Longitude: -2.9350},
	{ID: "zaragoza", Name: "Zaragoza", Country: "España", Latitude: 41.6488, Longitude: -0.8891},
	{ID: "palma", Name: "Palma de Mallorca", Country: "España", Latitude: 39.5696, Longitude: 2.6502},
	{ID: "las-palmas", Name: "Las Palmas de Gran Canaria", Country: "España", Latitude: 28.1235, Longitude: -15.4363},
	{ID: "ciudad-de-mexico", Name: "Ciudad de México", Country: "México", Latitude: 19.4326, Longitude: -99.1332},
	{ID: "guadalajara", Name: "Guadalajara", Country: "México", Latitude: 20.6597, Longitude: -103.3496},
	{ID: "monterrey", Name: "Monterrey", Country: "México", Latitude: 25.6866, Longitude: -100.3161},
	{ID: "buenos-aires", Name: "Buenos Aires", Country: "Argentina", Latitude: -34.6037, Longitude: -58.3816},
	{ID: "cordoba-ar", Name: "Córdoba", Country: "Argentina", Latitude: -31.4201, Longitude: -64.1888},
	{ID: "rosario", Name: "Rosario", Country: "Argentina", Latitude: -32.9442, Longitude: -60.6505},
	{ID: "mendoza", Name: "Mendoza", Country: "Argentina", Latitude: -32.8895, Longitude: -68.8458},
	{ID: "santiago", Name: "Santiago", Country: "Chile", Latitude: -33.4489, Longitude: -70.6693},
	{ID: "valparaiso", Name: "Valparaíso", Country: "Chile", Latitude: -33.0472, Longitude: -71.6127},
	{ID: "lima", Name: "Lima", Country: "Perú", Latitude: -12.0464, Longitude: -77.0428},
	{ID: "bogota", Name: "Bogotá", Country: "Colombia", Latitude: 4.7110, Longitude: -74.0721},
	{ID: "medellin", Name: "Medellín", Country: "Colombia", Latitude: 6.2442, Longitude: -75.5812},
	{ID: "cali", Name: "Cali", Country: "Colombia", Latitude: 3.4516, Longitude: -76.5320},
	{ID: "caracas", Name: "Caracas", Country: "Venezuela", Latitude: 10.4806, Longitude: -66.9036},
	{ID: "quito", Name: "Quito", Country: "Ecuador", Latitude: -0.1807, Longitude: -78.4678},
	{ID: "guayaquil", Name: "Guayaquil", Country: "Ecuador", Latitude: -2.1710, Longitude: -79.9224},
	{ID: "montevideo", Name: "Montevideo", Country: "Uruguay", Latitude: -34.9011, Longitude: -56.1645},
	{ID: "asuncion", Name: "Asunción", Country: "Paraguay", Latitude: -25.2637, Longitude: -57.5759},
	{ID: "la-paz", Name: "La Paz", Country: "Bolivia", Latitude: -16.4897, Longitude: -68.1193},
	{ID: "san-jose", Name: "San José", Country: "Costa Rica", Latitude: 9.9281, Longitude: -84.0907},
	{ID: "panama", Name: "Ciudad de Panamá", Country: "Panamá", Latitude: 8.9824, Longitude: -79.5199},
	{ID: "la-habana", Name: "La Habana", Country: "Cuba", Latitude: 23.1136, Longitude: -82.3666},
	{ID: "santo-domingo", Name: "Santo Domingo", Country: "República Dominicana", Latitude: 18.4861, Longitude: -69.9312},
	{ID: "san-juan", Name: "San Juan", Country: "Puerto Rico", Latitude: 18.4655, Longitude: -66.1057},
	{ID: "miami", Name: "Miami", Country: "Estados Unidos", Latitude: 25.7617, Longitude: -80.1918},
	{ID: "nueva-york", Name: "Nueva York", Country: "Estados Unidos", Latitude: 40.7128, Longitude: -74.0060},
	{ID: "los-angeles", Name: "Los Ángeles", Country: "Estados Unidos", Latitude: 34.0522, Longitude: -118.2437},
	{ID: "londres", Name: "Londres", Country: "Reino Unido", Latitude: 51.5074, Longitude: -0.1278},
	{ID: "paris", Name: "París", Country: "Francia", Latitude: 48.8566, Longitude: 2.3522},
	{ID: "roma", Name: "Roma", Country: "Italia", Latitude: 41.9028, Longitude: 12.4964},
	{ID: "berlin", Name: "Berlín", Country: "Alemania", Latitude: 52.5200, Longitude: 13.4050},
	{ID: "lisboa", Name: "Lisboa", Country: "Portugal", Latitude: 38.7223, Longitude: -9.1393},
	{ID: "amsterdam", Name: "Ámsterdam", Country: "Países Bajos", Latitude: 52.3676, Longitude: 4.9041},
	{ID: "moscu", Name: "Moscú", Country: "Rusia", Latitude: 55.7558, Longitude: 37.6173},
	{ID: "tokio", Name: "Tokio", Country: "Japón", Latitude: 35.6762, Longitude: 139.6503},
	{ID: "sidney", Name: "Sídney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093},
}

// All возвращает копию всего справочника
func All() []domain.Location {
	result := make([]domain.Location, len(directory))
	copy(result, directory)
	return result
}

// ByID находит место по идентификатору
func ByID(id string) (domain.Location, error) {
	for _, loc := range directory {
		if loc.ID == id {
			return loc, nil
		}
	}
	return domain.Location{}, domain.ErrLocationNotFound
}
