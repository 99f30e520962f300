package mailer

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/gyulist/gyulist/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	in  *sesv2.SendEmailInput
	out *sesv2.SendEmailOutput
	err error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	return f.out, f.err
}

func TestSESSender_Send(t *testing.T) {
	fake := &fakeSES{out: &sesv2.SendEmailOutput{MessageId: aws.String("0100-abc")}}
	s := NewSESSenderWithClient(fake, "Gyulist <no-reply@gyulist.com>")

	res, err := s.Send(context.Background(), Message{To: "farmer@example.com", Subject: "hi", HTML: "<p>hi</p>", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, Result{HTTPStatus: http.StatusOK, MessageID: "0100-abc"}, res)

	require.NotNil(t, fake.in)
	assert.Equal(t, "Gyulist <no-reply@gyulist.com>", aws.ToString(fake.in.FromEmailAddress))
	assert.Equal(t, []string{"farmer@example.com"}, fake.in.Destination.ToAddresses)
	assert.Equal(t, "hi", aws.ToString(fake.in.Content.Simple.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(fake.in.Content.Simple.Body.Html.Data))
	require.NotNil(t, fake.in.Content.Simple.Body.Text)
}

func TestSESSender_ResponseErrorCarriesStatus(t *testing.T) {
	respErr := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusTooManyRequests}},
			Err:      errors.New("throttled"),
		},
	}
	s := NewSESSenderWithClient(&fakeSES{err: respErr}, "no-reply@gyulist.com")

	res, err := s.Send(context.Background(), Message{To: "farmer@example.com"})
	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, res.HTTPStatus)
	assert.Empty(t, res.MessageID)
}

func TestSESSender_APIErrorCode(t *testing.T) {
	respErr := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusBadRequest}},
			Err:      &types.MessageRejected{Message: aws.String("Email address is not verified.")},
		},
	}
	s := NewSESSenderWithClient(&fakeSES{err: respErr}, "no-reply@gyulist.com")

	res, err := s.Send(context.Background(), Message{To: "farmer@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ses MessageRejected")
	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "MessageRejected", apiErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, res.HTTPStatus)
}

func TestSESSender_TransportError(t *testing.T) {
	s := NewSESSenderWithClient(&fakeSES{err: errors.New("dial tcp: timeout")}, "no-reply@gyulist.com")

	res, err := s.Send(context.Background(), Message{To: "farmer@example.com"})
	require.Error(t, err)
	assert.Zero(t, res.HTTPStatus)
}

func TestLogSender(t *testing.T) {
	res, err := NewLogSender(logging.Nop()).Send(context.Background(), Message{To: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.HTTPStatus)
	assert.True(t, strings.HasPrefix(res.MessageID, "log-"))
}

func TestTemplates_PreRegisterConfirmation(t *testing.T) {
	tpl := NewTemplates("https://gyulist.com")

	en, err := tpl.PreRegisterConfirmation("en", "a&b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a&b@example.com", en.To)
	assert.Equal(t, "Thanks for pre-registering for Gyulist", en.Subject)
	assert.Contains(t, en.HTML, "a&amp;b@example.com")
	assert.Contains(t, en.HTML, `href="https://gyulist.com"`)
	assert.Contains(t, en.Text, "Hi a&b@example.com,")

	ja, err := tpl.PreRegisterConfirmation("fr", "x@example.com")
	require.NoError(t, err)
	assert.Contains(t, ja.Subject, "事前登録")
	assert.Contains(t, ja.HTML, "x@example.com 様")
}
