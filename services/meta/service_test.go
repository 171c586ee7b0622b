package meta

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"reflect"
	"sync"
	"testing"

	"kidshelf/models"
	"kidshelf/services/metadata"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newTestService(rt roundTripFunc) *Service {
	return NewService(metadata.NewClient("test-token", "en-US", &http.Client{Transport: rt}, nil))
}

func TestMovieDetailsShaping(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/3/find/tt0137523":
			return jsonResponse(http.StatusOK, `{"movie_results":[{"id":550}],"tv_results":[]}`), nil
		case "/3/movie/550":
			return jsonResponse(http.StatusOK, `{
				"id":550,"title":"Fight Club","overview":"An insomniac office worker...",
				"poster_path":"/poster.jpg","backdrop_path":"/backdrop.jpg",
				"release_date":"1999-10-15","runtime":139,"vote_average":8.438,
				"genres":[{"id":18,"name":"Drama"},{"id":53,"name":"Thriller"}],
				"credits":{
					"cast":[{"name":"A"},{"name":"B"},{"name":"C"},{"name":"D"},{"name":"E"},{"name":"F"},{"name":"G"}],
					"crew":[{"name":"David Fincher","job":"Director"},{"name":"Jim Uhls","job":"Screenplay"}]
				},
				"external_ids":{"imdb_id":"tt0137523"}}`), nil
		}
		t.Errorf("unhandled request: %s", req.URL)
		return jsonResponse(http.StatusNotFound, `{}`), nil
	})

	got, err := svc.Details(context.Background(), "movie", "tt0137523")
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a meta record")
	}

	want := &models.Meta{
		ID:          "tt0137523",
		Type:        "movie",
		Name:        "Fight Club",
		Poster:      "https://image.tmdb.org/t/p/w500/poster.jpg",
		Background:  "https://image.tmdb.org/t/p/w1280/backdrop.jpg",
		Description: "An insomniac office worker...",
		ReleaseInfo: "1999",
		Released:    "1999-10-15T00:00:00.000Z",
		IMDBRating:  "8.4",
		Genres:      []string{"Drama", "Thriller"},
		Runtime:     "139 min",
		Director:    []string{"David Fincher"},
		Cast:        []string{"A", "B", "C", "D", "E"},
		Links: []models.MetaLink{{
			Name:     "IMDb 8.4",
			Category: "imdb",
			URL:      "https://imdb.com/title/tt0137523",
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("meta mismatch:\n got: %+v\nwant: %+v", got, want)
	}

	// Shaping is idempotent: identical upstream data yields identical output.
	again, err := svc.Details(context.Background(), "movie", "tt0137523")
	if err != nil {
		t.Fatalf("second Details failed: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("repeated assembly differs:\n got: %+v\nwant: %+v", again, got)
	}
}

func TestSeriesPartialSeasonFailure(t *testing.T) {
	var mu sync.Mutex
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		defer mu.Unlock()
		switch req.URL.Path {
		case "/3/find/tt0903747":
			return jsonResponse(http.StatusOK, `{"movie_results":[],"tv_results":[{"id":1396}]}`), nil
		case "/3/tv/1396":
			return jsonResponse(http.StatusOK, `{
				"id":1396,"name":"Show","first_air_date":"2020-01-05",
				"status":"Returning Series","number_of_seasons":3,"vote_average":9.0}`), nil
		case "/3/tv/1396/season/1":
			return jsonResponse(http.StatusOK, `{"season_number":1,"episodes":[
				{"name":"Pilot","season_number":1,"episode_number":1,"air_date":"2020-01-05","still_path":"/s1e1.jpg"},
				{"name":"Two","season_number":1,"episode_number":2,"air_date":"2020-01-12"}]}`), nil
		case "/3/tv/1396/season/2":
			return jsonResponse(http.StatusInternalServerError, `{}`), nil
		case "/3/tv/1396/season/3":
			return jsonResponse(http.StatusOK, `{"season_number":3,"episodes":[
				{"name":"Return","season_number":3,"episode_number":1,"air_date":"2022-03-01"}]}`), nil
		}
		t.Errorf("unhandled request: %s", req.URL)
		return jsonResponse(http.StatusNotFound, `{}`), nil
	})

	got, err := svc.Details(context.Background(), "series", "tt0903747")
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a meta record")
	}
	if got.ReleaseInfo != "2020-" {
		t.Errorf("ongoing series release info = %q, want \"2020-\"", got.ReleaseInfo)
	}

	// Season 2 failed; seasons 1 and 3 survive in season-then-episode order.
	wantIDs := []string{"tt0903747:1:1", "tt0903747:1:2", "tt0903747:3:1"}
	if len(got.Videos) != len(wantIDs) {
		t.Fatalf("expected %d episodes, got %d: %+v", len(wantIDs), len(got.Videos), got.Videos)
	}
	for i, want := range wantIDs {
		if got.Videos[i].ID != want {
			t.Errorf("video[%d].ID = %q, want %q", i, got.Videos[i].ID, want)
		}
	}
	first := got.Videos[0]
	if first.Title != "Pilot" || first.Season != 1 || first.Episode != 1 {
		t.Errorf("unexpected first episode: %+v", first)
	}
	if first.Released != "2020-01-05T00:00:00.000Z" {
		t.Errorf("unexpected released: %s", first.Released)
	}
	if first.Thumbnail != "https://image.tmdb.org/t/p/w300/s1e1.jpg" {
		t.Errorf("unexpected thumbnail: %s", first.Thumbnail)
	}
}

func TestSeriesReleaseInfo(t *testing.T) {
	cases := []struct {
		name string
		d    metadata.SeriesDetails
		want string
	}{
		{"ended range", metadata.SeriesDetails{FirstAirDate: "2008-01-20", LastAirDate: "2013-09-29", Status: "Ended"}, "2008-2013"},
		{"ended same year", metadata.SeriesDetails{FirstAirDate: "2013-02-01", LastAirDate: "2013-11-01", Status: "Ended"}, "2013"},
		{"canceled range", metadata.SeriesDetails{FirstAirDate: "2016-05-01", LastAirDate: "2018-06-01", Status: "Canceled"}, "2016-2018"},
		{"ongoing", metadata.SeriesDetails{FirstAirDate: "2020-01-05", Status: "Returning Series"}, "2020-"},
		{"no start date", metadata.SeriesDetails{Status: "Ended"}, ""},
	}
	for _, tc := range cases {
		if got := seriesReleaseInfo(&tc.d); got != tc.want {
			t.Errorf("%s: seriesReleaseInfo = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDetailsNotFound(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"movie_results":[],"tv_results":[]}`), nil
	})

	got, err := svc.Details(context.Background(), "movie", "tt9999999")
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent record, got %+v", got)
	}
}

func TestDetailsWrongMediaTypeNotFound(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"movie_results":[{"id":550}],"tv_results":[]}`), nil
	})

	// The id resolves to a movie, but a series was requested.
	got, err := svc.Details(context.Background(), "series", "tt0137523")
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent record, got %+v", got)
	}
}
