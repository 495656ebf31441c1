package controllers

type Balance struct {
	Address string `json:"address"`
}

type InspectReq struct {
	Address string `json:"address"`
}

type TokenAccountReq struct {
	Address string `json:"address"`
}

type ATAReq struct {
	Owner string `json:"owner"`
	Mint  string `json:"mint"`
}

type Slot struct {
	Slot uint64 `json:"slot"`
}
