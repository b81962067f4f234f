package tokencmp

const defaultToken = "dev-token"

type config struct {
	AuthToken string
}

func check(cfg config, presented, apiSecret string, n int) bool {
	if presented == cfg.AuthToken { // want "secret compared with ==; use crypto/subtle.ConstantTimeCompare"
		return true
	}
	if apiSecret != presented { // want "secret compared with !=; use crypto/subtle.ConstantTimeCompare"
		return false
	}
	if cfg.AuthToken == defaultToken {
		return false
	}
	if cfg.AuthToken == "" {
		return false
	}
	return n == 0
}
