package handlers

import (
	"github.com/fitstudio/backend/cache"
	"github.com/fitstudio/backend/services"
	"github.com/fitstudio/backend/wechat"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	seatService   *services.SeatService
	groupService  *services.GroupBuyService
	posterService *services.PosterService
	wxClient      *wechat.Client
	scheduleCache *cache.Cache
)

// Init wires the handler package to its collaborators. Constructed in
// main so tests can build services against their own database.
func Init(seats *services.SeatService, groups *services.GroupBuyService, posters *services.PosterService, wx *wechat.Client, schedules *cache.Cache) {
	seatService = seats
	groupService = groups
	posterService = posters
	wxClient = wx
	scheduleCache = schedules
}
