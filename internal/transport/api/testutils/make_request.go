package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	query   map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	// Payload тело запроса. []byte отправляется как есть, остальное сериализуется в json.
	Payload any
}

// Response прочитанный ответ роутера.
type Response struct {
	StatusCode int
	Header     http.Header
	Raw        []byte
}

// JSON декодирует тело ответа в объект. Для пустого тела или не-объекта возвращает nil.
func (r *Response) JSON() (map[string]any, error) {
	if len(r.Raw) == 0 || r.Raw[0] != '{' {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(r.Raw, &out); err != nil {
		return nil, fmt.Errorf("decode response body: %s", err.Error())
	}
	return out, nil
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*Response, error) {
	options := RequestOptions{
		headers: map[string]string{"Content-Type": "application/json"},
		query:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	var body io.Reader
	switch p := args.Payload.(type) {
	case nil:
	case []byte:
		body = bytes.NewReader(p)
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request payload: %s", err.Error())
		}
		body = bytes.NewReader(data)
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	if len(options.query) > 0 {
		q := request.URL.Query()
		for k, v := range options.query {
			q.Set(k, v)
		}
		request.URL.RawQuery = q.Encode()
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	res := recorder.Result()
	defer res.Body.Close()

	raw, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read response body: %s", readErr.Error())
	}

	return &Response{StatusCode: res.StatusCode, Header: res.Header, Raw: raw}, nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer добавляет заголовок авторизации. Пустой токен ничего не меняет.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		if token != "" {
			fn.headers["Authorization"] = "Bearer " + token
		}
	}
}

func WithQuery(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.query[name] = value
	}
}
