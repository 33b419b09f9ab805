package repository

import (
	"testing"

	"github.com/rocketscienceinc/reversi-backend/testing/suite"
)

func TestMongoBoardRepository(t *testing.T) {
	ctx, st := suite.NewMongo(t)

	testBoardRepository(ctx, t, NewMongoBoardRepository(st.Mongo.Collection("games")))
}
