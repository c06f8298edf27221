package scraper

const (
	newsURL = "https://data-class-mars.s3.amazonaws.com/Mars/index.html"

	featuredImageURL  = "https://data-class-space.s3.amazonaws.com/JPL_Space/index.html"
	featuredImageBase = "https://data-class-space.s3.amazonaws.com/JPL_Space/"

	factsURL = "https://data-class-mars-facts.s3.amazonaws.com/Mars_Facts/index.html"

	// Detail page and image hrefs are appended to this URL as-is.
	hemispheresURL = "https://marshemispheres.com/"

	routesURL = "https://nasa.gov/"

	// RouteFallbackImage is returned whenever no route image can be located.
	RouteFallbackImage = "https://mars.nasa.gov/system/resources/detail_files/26992_PIA24923_MAIN-web.jpg"
)
