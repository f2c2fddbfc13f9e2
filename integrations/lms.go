package integrations

import (
	"fmt"

	"lumawisp/luma"
)

// LMS integration kinds.
const (
	LMSWidget = "widget"
	LMSIframe = "iframe"
	LMSAPI    = "api"
)

// LMSCode returns the embed snippet for a learning-management system.
func LMSCode(kind string, realm luma.Realm, baseURL string) (string, error) {
	switch kind {
	case LMSWidget:
		return render(lmsWidgetTemplate, realm, baseURL), nil
	case LMSIframe:
		return render(lmsIframeTemplate, realm, baseURL), nil
	case LMSAPI:
		return render(lmsAPITemplate, realm, baseURL), nil
	}
	return "", fmt.Errorf("unknown LMS integration type %q", kind)
}

const lmsWidgetTemplate = `<!-- Luma Wisp Educational Widget -->
<div id="luma-wisp-widget" data-realm="{{realm}}" data-user-id="{{student_id}}">
  <div class="luma-loading">Loading Luma Wisp...</div>
</div>

<script src="{{baseUrl}}/luma-widget.js"></script>
<script>
// Initialize Luma Wisp Widget
LumaWispWidget.init({
  container: '#luma-wisp-widget',
  realm: '{{realm}}',
  userId: '{{student_id}}', // Replace with your LMS user ID variable
  apiUrl: '{{baseUrl}}/api',

  // Customization options
  size: 'medium', // small, medium, large
  position: 'bottom-right', // bottom-right, bottom-left, top-right, top-left
  showDailyThought: true,
  enableChat: true,

  // Event callbacks
  onRealmChange: function(newRealm) {
    // Track realm changes in your LMS analytics
  },
  onChatMessage: function(message, response) {
    // Log interactions for learning analytics
  },
  onChallengeComplete: function(challengeId, points) {
    // Award points in your LMS gradebook
  }
});
</script>

<style>
#luma-wisp-widget {
  position: fixed;
  bottom: 20px;
  right: 20px;
  z-index: 1000;
  font-family: 'Comfortaa', cursive;
}
.luma-loading {
  background: linear-gradient(45deg, rgba(139, 92, 246, 0.8), rgba(59, 130, 246, 0.8));
  color: white;
  padding: 10px 20px;
  border-radius: 25px;
  font-size: 12px;
  animation: pulse 2s infinite;
}
@keyframes pulse {
  0%, 100% { opacity: 0.8; }
  50% { opacity: 1; }
}
</style>`

const lmsIframeTemplate = `<!-- Luma Wisp Embedded Learning Environment -->
<iframe
  src="{{baseUrl}}?embed=true&realm={{realm}}&user={{student_id}}&course={{course_id}}"
  width="100%" height="600px" frameborder="0"
  allow="microphone; camera; fullscreen"
  sandbox="allow-scripts allow-same-origin allow-forms allow-popups"
  title="Luma Wisp Academy of Remembrance"
  data-luma-realm="{{realm}}">
  <p>Your browser does not support iframes.
     <a href="{{baseUrl}}" target="_blank" rel="noopener">Open Luma Wisp Academy directly</a>
  </p>
</iframe>

<script>
// LMS-iframe communication
window.addEventListener('message', function(event) {
  if (event.origin !== '{{baseUrl}}') return;

  var type = event.data.type;
  var data = event.data.data;

  switch (type) {
    case 'luma.challenge.complete':
      // Award points in your LMS gradebook
      break;
    case 'luma.realm.change':
      // Track learning progress
      break;
    case 'luma.conversation':
      // Log educational conversations
      break;
  }
});
</script>`

const lmsAPITemplate = `// Luma Wisp LMS API Integration
// Server-side integration for your LMS backend

class LumaWispAPI {
  constructor(baseUrl, apiKey) {
    this.baseUrl = baseUrl || '{{baseUrl}}';
    this.apiKey = apiKey || 'your-api-key';
  }

  headers() {
    return {
      'Authorization': 'Bearer ' + this.apiKey,
      'Content-Type': 'application/json'
    };
  }

  // Get student progress
  async getStudentProgress(studentId) {
    const response = await fetch(this.baseUrl + '/api/user/' + studentId + '/progress', {
      headers: this.headers()
    });
    return response.json();
  }

  // Create chat session for student
  async startChatSession(studentId, realm) {
    const response = await fetch(this.baseUrl + '/api/luma/chat', {
      method: 'POST',
      headers: this.headers(),
      body: JSON.stringify({
        message: 'Hello Luma!',
        realm: realm || '{{realm}}',
        userId: studentId
      })
    });
    return response.json();
  }

  // Award completion points
  async completeChallenge(studentId, challengeId, realm) {
    const response = await fetch(this.baseUrl + '/api/challenges/complete', {
      method: 'POST',
      headers: this.headers(),
      body: JSON.stringify({
        userId: studentId,
        challengeType: challengeId,
        realm: realm
      })
    });
    return response.json();
  }

  // Get daily wisdom thought
  async getDailyThought(realm) {
    const response = await fetch(this.baseUrl + '/api/luma/thought/' + (realm || '{{realm}}'), {
      headers: this.headers()
    });
    return response.json();
  }
}

// Example usage:
const lumaAPI = new LumaWispAPI();

async function initializeLumaForStudent(studentId, courseRealm) {
  const progress = await lumaAPI.getStudentProgress(studentId);
  const dailyThought = await lumaAPI.getDailyThought(courseRealm);
  const chatSession = await lumaAPI.startChatSession(studentId, courseRealm);
}`
