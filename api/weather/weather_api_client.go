package weather

import (
	"fmt"
	"net/url"

	"ttc-rider-server/api"
	"ttc-rider-server/models"
)

// WeatherApiClient embeds the common HTTPClient
type WeatherApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewWeatherApiClient creates a new instance of WeatherApiClient
func NewWeatherApiClient(httpClient *api.HTTPClient) *WeatherApiClient {
	return &WeatherApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials configures the weatherapi.com key.
func (c *WeatherApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetCurrentConditions retrieves current conditions for a city and maps
// them onto the slim CurrentConditions shape.
func (c *WeatherApiClient) GetCurrentConditions(city string) (*models.CurrentConditions, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key not configured")
	}

	var response models.WeatherAPIResponse
	endpoint := fmt.Sprintf("/current.json?key=%s&q=%s", url.QueryEscape(c.apiKey), url.QueryEscape(city))
	if err := c.Request("GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}

	return &models.CurrentConditions{
		Location:  response.Location.Name,
		TempC:     response.Current.TempC,
		Condition: response.Current.Condition.Text,
	}, nil
}
