package catalog

// cities is ordered roughly by region so search results group sensibly.
var cities = []Entry{
	// Oceania
	{Slug: "melbourne", Name: "Melbourne", Country: "Australia", State: "VIC", TimeZone: "Australia/Melbourne", Lat: -37.8136, Lng: 144.9631},
	{Slug: "sydney", Name: "Sydney", Country: "Australia", State: "NSW", TimeZone: "Australia/Sydney", Lat: -33.8688, Lng: 151.2093},
	{Slug: "brisbane", Name: "Brisbane", Country: "Australia", State: "QLD", TimeZone: "Australia/Brisbane", Lat: -27.4698, Lng: 153.0251},
	{Slug: "adelaide", Name: "Adelaide", Country: "Australia", State: "SA", TimeZone: "Australia/Adelaide", Lat: -34.9285, Lng: 138.6007},
	{Slug: "perth", Name: "Perth", Country: "Australia", State: "WA", TimeZone: "Australia/Perth", Lat: -31.9505, Lng: 115.8605},
	{Slug: "darwin", Name: "Darwin", Country: "Australia", State: "NT", TimeZone: "Australia/Darwin", Lat: -12.4634, Lng: 130.8456},
	{Slug: "hobart", Name: "Hobart", Country: "Australia", State: "TAS", TimeZone: "Australia/Hobart", Lat: -42.8821, Lng: 147.3272},
	{Slug: "auckland", Name: "Auckland", Country: "New Zealand", TimeZone: "Pacific/Auckland", Lat: -36.8485, Lng: 174.7633},
	{Slug: "honolulu", Name: "Honolulu", Country: "United States", State: "HI", TimeZone: "Pacific/Honolulu", Lat: 21.3069, Lng: -157.8583},
	{Slug: "apia", Name: "Apia", Country: "Samoa", TimeZone: "Pacific/Apia", Lat: -13.8507, Lng: -171.7514},
	{Slug: "kiritimati", Name: "Kiritimati", Country: "Kiribati", TimeZone: "Pacific/Kiritimati", Lat: 1.8721, Lng: -157.4278},

	// Asia
	{Slug: "tokyo", Name: "Tokyo", Country: "Japan", TimeZone: "Asia/Tokyo", Lat: 35.6762, Lng: 139.6503},
	{Slug: "seoul", Name: "Seoul", Country: "South Korea", TimeZone: "Asia/Seoul", Lat: 37.5665, Lng: 126.9780},
	{Slug: "shanghai", Name: "Shanghai", Country: "China", TimeZone: "Asia/Shanghai", Lat: 31.2304, Lng: 121.4737},
	{Slug: "hong-kong", Name: "Hong Kong", Country: "China", TimeZone: "Asia/Hong_Kong", Lat: 22.3193, Lng: 114.1694},
	{Slug: "taipei", Name: "Taipei", Country: "Taiwan", TimeZone: "Asia/Taipei", Lat: 25.0330, Lng: 121.5654},
	{Slug: "singapore", Name: "Singapore", Country: "Singapore", TimeZone: "Asia/Singapore", Lat: 1.3521, Lng: 103.8198},
	{Slug: "manila", Name: "Manila", Country: "Philippines", TimeZone: "Asia/Manila", Lat: 14.5995, Lng: 120.9842},
	{Slug: "jakarta", Name: "Jakarta", Country: "Indonesia", TimeZone: "Asia/Jakarta", Lat: -6.2088, Lng: 106.8456},
	{Slug: "bangkok", Name: "Bangkok", Country: "Thailand", TimeZone: "Asia/Bangkok", Lat: 13.7563, Lng: 100.5018},
	{Slug: "kathmandu", Name: "Kathmandu", Country: "Nepal", TimeZone: "Asia/Kathmandu", Lat: 27.7172, Lng: 85.3240},
	{Slug: "mumbai", Name: "Mumbai", Country: "India", State: "Maharashtra", TimeZone: "Asia/Kolkata", Lat: 19.0760, Lng: 72.8777},
	{Slug: "delhi", Name: "New Delhi", Country: "India", State: "Delhi", TimeZone: "Asia/Kolkata", Lat: 28.6139, Lng: 77.2090},
	{Slug: "bengaluru", Name: "Bengaluru", Country: "India", State: "Karnataka", TimeZone: "Asia/Kolkata", Lat: 12.9716, Lng: 77.5946},
	{Slug: "karachi", Name: "Karachi", Country: "Pakistan", TimeZone: "Asia/Karachi", Lat: 24.8607, Lng: 67.0011},
	{Slug: "tehran", Name: "Tehran", Country: "Iran", TimeZone: "Asia/Tehran", Lat: 35.6892, Lng: 51.3890},
	{Slug: "dubai", Name: "Dubai", Country: "United Arab Emirates", TimeZone: "Asia/Dubai", Lat: 25.2048, Lng: 55.2708},
	{Slug: "tel-aviv", Name: "Tel Aviv", Country: "Israel", TimeZone: "Asia/Jerusalem", Lat: 32.0853, Lng: 34.7818},

	// Europe and Africa
	{Slug: "istanbul", Name: "Istanbul", Country: "Turkey", TimeZone: "Europe/Istanbul", Lat: 41.0082, Lng: 28.9784},
	{Slug: "moscow", Name: "Moscow", Country: "Russia", TimeZone: "Europe/Moscow", Lat: 55.7558, Lng: 37.6173},
	{Slug: "athens", Name: "Athens", Country: "Greece", TimeZone: "Europe/Athens", Lat: 37.9838, Lng: 23.7275},
	{Slug: "helsinki", Name: "Helsinki", Country: "Finland", TimeZone: "Europe/Helsinki", Lat: 60.1699, Lng: 24.9384},
	{Slug: "berlin", Name: "Berlin", Country: "Germany", TimeZone: "Europe/Berlin", Lat: 52.5200, Lng: 13.4050},
	{Slug: "paris", Name: "Paris", Country: "France", TimeZone: "Europe/Paris", Lat: 48.8566, Lng: 2.3522},
	{Slug: "amsterdam", Name: "Amsterdam", Country: "Netherlands", TimeZone: "Europe/Amsterdam", Lat: 52.3676, Lng: 4.9041},
	{Slug: "madrid", Name: "Madrid", Country: "Spain", TimeZone: "Europe/Madrid", Lat: 40.4168, Lng: -3.7038},
	{Slug: "rome", Name: "Rome", Country: "Italy", TimeZone: "Europe/Rome", Lat: 41.9028, Lng: 12.4964},
	{Slug: "stockholm", Name: "Stockholm", Country: "Sweden", TimeZone: "Europe/Stockholm", Lat: 59.3293, Lng: 18.0686},
	{Slug: "london", Name: "London", Country: "United Kingdom", State: "England", TimeZone: "Europe/London", Lat: 51.5074, Lng: -0.1278},
	{Slug: "dublin", Name: "Dublin", Country: "Ireland", TimeZone: "Europe/Dublin", Lat: 53.3498, Lng: -6.2603},
	{Slug: "lisbon", Name: "Lisbon", Country: "Portugal", TimeZone: "Europe/Lisbon", Lat: 38.7223, Lng: -9.1393},
	{Slug: "reykjavik", Name: "Reykjavik", Country: "Iceland", TimeZone: "Atlantic/Reykjavik", Lat: 64.1466, Lng: -21.9426},
	{Slug: "cairo", Name: "Cairo", Country: "Egypt", TimeZone: "Africa/Cairo", Lat: 30.0444, Lng: 31.2357},
	{Slug: "nairobi", Name: "Nairobi", Country: "Kenya", TimeZone: "Africa/Nairobi", Lat: -1.2921, Lng: 36.8219},
	{Slug: "lagos", Name: "Lagos", Country: "Nigeria", TimeZone: "Africa/Lagos", Lat: 6.5244, Lng: 3.3792},
	{Slug: "johannesburg", Name: "Johannesburg", Country: "South Africa", State: "Gauteng", TimeZone: "Africa/Johannesburg", Lat: -26.2041, Lng: 28.0473},

	// Americas
	{Slug: "sao-paulo", Name: "São Paulo", Country: "Brazil", State: "SP", TimeZone: "America/Sao_Paulo", Lat: -23.5505, Lng: -46.6333},
	{Slug: "buenos-aires", Name: "Buenos Aires", Country: "Argentina", TimeZone: "America/Argentina/Buenos_Aires", Lat: -34.6037, Lng: -58.3816},
	{Slug: "santiago", Name: "Santiago", Country: "Chile", TimeZone: "America/Santiago", Lat: -33.4489, Lng: -70.6693},
	{Slug: "bogota", Name: "Bogotá", Country: "Colombia", TimeZone: "America/Bogota", Lat: 4.7110, Lng: -74.0721},
	{Slug: "lima", Name: "Lima", Country: "Peru", TimeZone: "America/Lima", Lat: -12.0464, Lng: -77.0428},
	{Slug: "mexico-city", Name: "Mexico City", Country: "Mexico", TimeZone: "America/Mexico_City", Lat: 19.4326, Lng: -99.1332},
	{Slug: "st-johns", Name: "St. John's", Country: "Canada", State: "NL", TimeZone: "America/St_Johns", Lat: 47.5615, Lng: -52.7126},
	{Slug: "halifax", Name: "Halifax", Country: "Canada", State: "NS", TimeZone: "America/Halifax", Lat: 44.6488, Lng: -63.5752},
	{Slug: "toronto", Name: "Toronto", Country: "Canada", State: "ON", TimeZone: "America/Toronto", Lat: 43.6532, Lng: -79.3832},
	{Slug: "vancouver", Name: "Vancouver", Country: "Canada", State: "BC", TimeZone: "America/Vancouver", Lat: 49.2827, Lng: -123.1207},
	{Slug: "new-york", Name: "New York", Country: "United States", State: "NY", TimeZone: "America/New_York", Lat: 40.7128, Lng: -74.0060},
	{Slug: "boston", Name: "Boston", Country: "United States", State: "MA", TimeZone: "America/New_York", Lat: 42.3601, Lng: -71.0589},
	{Slug: "washington", Name: "Washington", Country: "United States", State: "DC", TimeZone: "America/New_York", Lat: 38.9072, Lng: -77.0369},
	{Slug: "chicago", Name: "Chicago", Country: "United States", State: "IL", TimeZone: "America/Chicago", Lat: 41.8781, Lng: -87.6298},
	{Slug: "austin", Name: "Austin", Country: "United States", State: "TX", TimeZone: "America/Chicago", Lat: 30.2672, Lng: -97.7431},
	{Slug: "denver", Name: "Denver", Country: "United States", State: "CO", TimeZone: "America/Denver", Lat: 39.7392, Lng: -104.9903},
	{Slug: "phoenix", Name: "Phoenix", Country: "United States", State: "AZ", TimeZone: "America/Phoenix", Lat: 33.4484, Lng: -112.0740},
	{Slug: "los-angeles", Name: "Los Angeles", Country: "United States", State: "CA", TimeZone: "America/Los_Angeles", Lat: 34.0522, Lng: -118.2437},
	{Slug: "san-francisco", Name: "San Francisco", Country: "United States", State: "CA", TimeZone: "America/Los_Angeles", Lat: 37.7749, Lng: -122.4194},
	{Slug: "seattle", Name: "Seattle", Country: "United States", State: "WA", TimeZone: "America/Los_Angeles", Lat: 47.6062, Lng: -122.3321},
	{Slug: "anchorage", Name: "Anchorage", Country: "United States", State: "AK", TimeZone: "America/Anchorage", Lat: 61.2181, Lng: -149.9003},
}
