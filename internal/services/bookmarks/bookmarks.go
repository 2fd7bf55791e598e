package bookmarks

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
	"go.mongodb.org/mongo-driver/mongo"
)

type Bookmark struct {
	Id         string    `json:"id"`
	SurahId    int       `json:"surahId"`
	AyahNumber int       `json:"ayahNumber"`
	JuzNumber  int       `json:"juzNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateBookmarkRequest struct {
	SurahId    int `json:"surahId"`
	AyahNumber int `json:"ayahNumber"`
}

type AllBookmarksResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

var (
	ErrBookmarkExists   = errors.New("verse is already bookmarked")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrInvalidVerse     = errors.New("verse does not exist")
)

var ErrorMap = map[error]int{
	ErrBookmarkExists:   http.StatusConflict,
	ErrBookmarkNotFound: http.StatusNotFound,
	ErrInvalidVerse:     http.StatusBadRequest,
}

func Create(db *mongodb.DB, ctx context.Context, userId string, req CreateBookmarkRequest) (Bookmark, error) {
	if !quran.ValidVerse(req.SurahId, req.AyahNumber) {
		return Bookmark{}, ErrInvalidVerse
	}

	bookmarkDb, err := db.CreateBookmark(ctx, mongodb.BookmarkDb{
		UserId:     userId,
		SurahId:    req.SurahId,
		AyahNumber: req.AyahNumber,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Bookmark{}, ErrBookmarkExists
		}
		return Bookmark{}, err
	}

	return MapDbBookmarkToApiBookmark(bookmarkDb), nil
}

func ListByUser(db *mongodb.DB, ctx context.Context, userId string) ([]Bookmark, error) {
	bookmarksDb, err := db.ListBookmarksByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	bookmarks := make([]Bookmark, 0, len(bookmarksDb))
	for _, bookmarkDb := range bookmarksDb {
		bookmarks = append(bookmarks, MapDbBookmarkToApiBookmark(bookmarkDb))
	}
	return bookmarks, nil
}

func Delete(db *mongodb.DB, ctx context.Context, bookmarkId, userId string) error {
	if err := db.DeleteBookmark(ctx, bookmarkId, userId); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return ErrBookmarkNotFound
		}
		return err
	}
	return nil
}

func MapDbBookmarkToApiBookmark(bookmark mongodb.BookmarkDb) Bookmark {
	return Bookmark{
		Id:         bookmark.Id,
		SurahId:    bookmark.SurahId,
		AyahNumber: bookmark.AyahNumber,
		JuzNumber:  quran.JuzOf(bookmark.SurahId, bookmark.AyahNumber),
		CreatedAt:  bookmark.CreatedAt,
	}
}
