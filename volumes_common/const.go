package volumes_common

const (
	// Path of the paginated leaderboard endpoint on the trading backend
	LEADERBOARD_API_PATH = "/api/trading-volumes/"

	// User agent sent with every upstream request
	USER_AGENT = "Mozilla/5.0 Board-Proxy"
)
