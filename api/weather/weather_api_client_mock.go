package weather

import (
	"fmt"

	"ttc-rider-server/config"
	"ttc-rider-server/models"
	"ttc-rider-server/util"
)

// WeatherApiClientMock embeds mocked logic for the weather api client
type WeatherApiClientMock struct {
}

// NewWeatherApiClientMock creates a new instance of WeatherApiClientMock
func NewWeatherApiClientMock() *WeatherApiClientMock {
	return &WeatherApiClientMock{}
}

// GetCurrentConditions serves conditions from the bundled JSON fixture.
func (c *WeatherApiClientMock) GetCurrentConditions(city string) (*models.CurrentConditions, error) {
	response, err := util.ReadCurrentConditionsFromJSON(
		config.GetResourcePath(config.CURRENT_CONDITIONS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read current conditions from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op on the mock.
func (c *WeatherApiClientMock) SetCredentials(apiKey string) {}
