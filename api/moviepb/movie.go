package moviepb

import "google.golang.org/protobuf/encoding/protowire"

type Movie struct {
	Id    string
	Title string
	Genre string
}

func (m *Movie) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Movie) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

func (m *Movie) GetGenre() string {
	if m != nil {
		return m.Genre
	}
	return ""
}

func (m *Movie) size() int {
	if m == nil {
		return 0
	}

	return sizeString(1, m.Id) + sizeString(2, m.Title) + sizeString(3, m.Genre)
}

func (m *Movie) appendTo(b []byte) []byte {
	if m == nil {
		return b
	}

	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Genre)

	return b
}

func (m *Movie) merge(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if typ == protowire.BytesType {
			switch num {
			case 1:
				return consumeString(v, &m.Id)
			case 2:
				return consumeString(v, &m.Title)
			case 3:
				return consumeString(v, &m.Genre)
			}
		}

		return skipField(num, typ, v)
	})
}

func (m *Movie) Marshal() ([]byte, error) {
	return m.appendTo(make([]byte, 0, m.size())), nil
}

func (m *Movie) Unmarshal(b []byte) error {
	*m = Movie{}
	return m.merge(b)
}

// mergeMovieOnly decodes messages whose only field is `Movie movie = 1`.
func mergeMovieOnly(b []byte, dst **Movie) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeMovie(v, dst)
		}

		return skipField(num, typ, v)
	})
}

func marshalMovieOnly(m *Movie) []byte {
	return appendMovie(make([]byte, 0, sizeMovie(1, m)), 1, m)
}

type CreateMovieRequest struct {
	Movie *Movie
}

func (x *CreateMovieRequest) GetMovie() *Movie {
	if x != nil {
		return x.Movie
	}
	return nil
}

func (x *CreateMovieRequest) Marshal() ([]byte, error) {
	return marshalMovieOnly(x.GetMovie()), nil
}

func (x *CreateMovieRequest) Unmarshal(b []byte) error {
	*x = CreateMovieRequest{}
	return mergeMovieOnly(b, &x.Movie)
}

type CreateMovieResponse struct {
	Movie *Movie
}

func (x *CreateMovieResponse) GetMovie() *Movie {
	if x != nil {
		return x.Movie
	}
	return nil
}

func (x *CreateMovieResponse) Marshal() ([]byte, error) {
	return marshalMovieOnly(x.GetMovie()), nil
}

func (x *CreateMovieResponse) Unmarshal(b []byte) error {
	*x = CreateMovieResponse{}
	return mergeMovieOnly(b, &x.Movie)
}

type ReadMovieRequest struct {
	Id string
}

func (x *ReadMovieRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReadMovieRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, x.GetId()), nil
}

func (x *ReadMovieRequest) Unmarshal(b []byte) error {
	*x = ReadMovieRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(v, &x.Id)
		}

		return skipField(num, typ, v)
	})
}

type ReadMovieResponse struct {
	Movie *Movie
}

func (x *ReadMovieResponse) GetMovie() *Movie {
	if x != nil {
		return x.Movie
	}
	return nil
}

func (x *ReadMovieResponse) Marshal() ([]byte, error) {
	return marshalMovieOnly(x.GetMovie()), nil
}

func (x *ReadMovieResponse) Unmarshal(b []byte) error {
	*x = ReadMovieResponse{}
	return mergeMovieOnly(b, &x.Movie)
}

type ReadMoviesRequest struct{}

func (x *ReadMoviesRequest) Marshal() ([]byte, error) {
	return nil, nil
}

func (x *ReadMoviesRequest) Unmarshal(b []byte) error {
	return walkFields(b, skipField)
}

type ReadMoviesResponse struct {
	Movies []*Movie
}

func (x *ReadMoviesResponse) GetMovies() []*Movie {
	if x != nil {
		return x.Movies
	}
	return nil
}

func (x *ReadMoviesResponse) Marshal() ([]byte, error) {
	size := 0
	for _, m := range x.GetMovies() {
		size += protowire.SizeTag(1) + protowire.SizeBytes(m.size())
	}

	b := make([]byte, 0, size)
	for _, m := range x.GetMovies() {
		// nil elements still occupy a slot in a repeated field
		if m == nil {
			m = &Movie{}
		}
		b = appendMovie(b, 1, m)
	}

	return b, nil
}

func (x *ReadMoviesResponse) Unmarshal(b []byte) error {
	*x = ReadMoviesResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			var m *Movie
			n, err := consumeMovie(v, &m)
			if err != nil {
				return 0, err
			}

			x.Movies = append(x.Movies, m)

			return n, nil
		}

		return skipField(num, typ, v)
	})
}

type UpdateMovieRequest struct {
	Movie *Movie
}

func (x *UpdateMovieRequest) GetMovie() *Movie {
	if x != nil {
		return x.Movie
	}
	return nil
}

func (x *UpdateMovieRequest) Marshal() ([]byte, error) {
	return marshalMovieOnly(x.GetMovie()), nil
}

func (x *UpdateMovieRequest) Unmarshal(b []byte) error {
	*x = UpdateMovieRequest{}
	return mergeMovieOnly(b, &x.Movie)
}

type UpdateMovieResponse struct {
	Movie *Movie
}

func (x *UpdateMovieResponse) GetMovie() *Movie {
	if x != nil {
		return x.Movie
	}
	return nil
}

func (x *UpdateMovieResponse) Marshal() ([]byte, error) {
	return marshalMovieOnly(x.GetMovie()), nil
}

func (x *UpdateMovieResponse) Unmarshal(b []byte) error {
	*x = UpdateMovieResponse{}
	return mergeMovieOnly(b, &x.Movie)
}

type DeleteMovieRequest struct {
	Id string
}

func (x *DeleteMovieRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeleteMovieRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, x.GetId()), nil
}

func (x *DeleteMovieRequest) Unmarshal(b []byte) error {
	*x = DeleteMovieRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(v, &x.Id)
		}

		return skipField(num, typ, v)
	})
}

type DeleteMovieResponse struct {
	Success bool
}

func (x *DeleteMovieResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DeleteMovieResponse) Marshal() ([]byte, error) {
	return appendBool(nil, 1, x.GetSuccess()), nil
}

func (x *DeleteMovieResponse) Unmarshal(b []byte) error {
	*x = DeleteMovieResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			return consumeBool(v, &x.Success)
		}

		return skipField(num, typ, v)
	})
}
