package queries

import (
	"github.com/chrisaacson69/monopoly/app/models"
	"github.com/go-pg/pg/v10"
)

func GetUserData(userID string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: userID}
	err := db.Model(user).WherePK().Select()
	if err != nil {
		return nil, err
	}
	return user, nil
}
