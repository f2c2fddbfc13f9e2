package integrations

import (
	"fmt"

	"lumawisp/luma"
)

// Twine integration kinds.
const (
	TwineMacros = "macros"
	TwineWidget = "widget"
	TwineStory  = "story"
)

// TwineCode returns the snippet for a Twine interactive-fiction story.
func TwineCode(kind string, realm luma.Realm, baseURL string) (string, error) {
	switch kind {
	case TwineMacros:
		return render(twineMacrosTemplate, realm, baseURL), nil
	case TwineWidget:
		return render(twineWidgetTemplate, realm, baseURL), nil
	case TwineStory:
		return render(twineStoryTemplate, realm, baseURL), nil
	}
	return "", fmt.Errorf("unknown Twine integration type %q", kind)
}

const twineMacrosTemplate = `:: Luma Wisp Macros [script]
/*
Luma Wisp Integration Macros for Twine Stories
Add these macros to your Twine story's JavaScript section
*/

window.LumaWisp = {
  currentRealm: '{{realm}}',
  apiUrl: '{{baseUrl}}/api',

  // Initialize Luma in your story
  init: function(containerId) {
    const container = document.getElementById(containerId || 'luma-container');
    if (!container) return;
    container.innerHTML =
      '<div class="luma-wisp-story">' +
      '  <div class="luma-character" data-realm="' + this.currentRealm + '">' +
      '    <div class="luma-visual">✨</div>' +
      '    <div class="luma-name">Luma Wisp</div>' +
      '  </div>' +
      '  <div class="luma-dialogue" id="luma-dialogue">' +
      '    <p class="luma-thought">' + this.getRealmGreeting() + '</p>' +
      '  </div>' +
      '</div>';
  },

  // Change realm with visual transformation
  transformTo: function(realm) {
    this.currentRealm = realm;
    const visual = document.querySelector('.luma-visual');
    const dialogue = document.querySelector('.luma-dialogue');
    if (visual && dialogue) {
      const realmVisuals = { aether: '⭐', fire: '🔥', water: '💧', earth: '🌱', air: '🌪️' };
      visual.textContent = realmVisuals[realm];
      dialogue.innerHTML = '<p class="luma-thought">' + this.getRealmGreeting() + '</p>';
    }
  },

  // Get AI response for story integration
  speak: async function(message) {
    try {
      const response = await fetch(this.apiUrl + '/luma/chat', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          message: message,
          realm: this.currentRealm,
          userId: 'twine-player'
        })
      });
      const data = await response.json();
      return data.response;
    } catch (error) {
      return this.getFallbackResponse(message);
    }
  },

  // Get realm-specific greeting
  getRealmGreeting: function() {
    const greetings = {
      aether: "Welcome to the Realm of Origins, where all memories begin! ⭐",
      fire: "Feel the warmth of transformation in the Fire Realm! 🔥",
      water: "Let emotions flow freely in the Water Realm! 💧",
      earth: "Ground yourself in nature's wisdom in the Earth Realm! 🌱",
      air: "Breathe in freedom in the Air Realm! 🌪️"
    };
    return greetings[this.currentRealm];
  },

  // Fallback responses when the API is unavailable
  getFallbackResponse: function(message) {
    const responses = {
      aether: "The stars whisper ancient wisdom to guide your path! ⭐",
      fire: "Let your inner fire light the way forward! 🔥",
      water: "Flow like water, adapting to every challenge! 💧",
      earth: "Stay rooted in your strength and grow! 🌱",
      air: "Let your dreams soar on the wind! 🌪️"
    };
    return responses[this.currentRealm];
  }
};

// Twine Story Macros
Macro.add('luma', {
  handler: function() {
    // <<luma>> - Initialize Luma
    LumaWisp.init('luma-container-' + Math.random().toString(36).substr(2, 9));
  }
});

Macro.add('lumatransform', {
  handler: function() {
    // <<lumatransform "realm">> - Change realm
    if (this.args.length > 0) {
      LumaWisp.transformTo(this.args[0]);
    }
  }
});

Macro.add('lumaspeak', {
  handler: function() {
    // <<lumaspeak "message">> - Get AI response
    if (this.args.length > 0) {
      LumaWisp.speak(this.args[0]).then(function(response) {
        const dialogue = document.querySelector('.luma-dialogue');
        if (dialogue) {
          dialogue.innerHTML = '<p class="luma-response">' + response + '</p>';
        }
      });
    }
  }
});`

const twineWidgetTemplate = `<!-- Embedded Luma Wisp Widget for Twine Stories -->
<script src="{{baseUrl}}/luma-twine-widget.js"></script>

<div class="luma-story-widget" data-realm="{{realm}}" data-story-id="{{STORY_ID}}">
  <div class="luma-companion">
    <div class="luma-avatar" id="luma-avatar">✨</div>
    <div class="luma-speech-bubble" id="luma-speech">
      <p>Hello, brave storyteller! I'm here to guide you through this magical tale.</p>
    </div>
  </div>
</div>

<script>
// Initialize Luma Twine Widget
document.addEventListener('DOMContentLoaded', function() {
  const lumaWidget = new LumaTwineWidget({
    container: '.luma-story-widget',
    realm: '{{realm}}',
    apiUrl: '{{baseUrl}}/api',

    // Widget configuration
    position: 'companion', // companion, floating, inline
    size: 'medium',
    interactive: true,

    // Story integration
    respondToChoices: true,
    rememberChoices: true,

    onPassageChange: function(passageName) {
      this.reactToPassage(passageName);
    },
    onPlayerChoice: function(choice, passage) {
      this.commentOnChoice(choice);
    },
    onStoryEnd: function(ending) {
      this.reflectOnStory(ending);
    }
  });
});
</script>

<style>
.luma-story-widget {
  position: fixed;
  bottom: 20px;
  right: 20px;
  z-index: 1000;
  max-width: 300px;
  font-family: 'Comfortaa', cursive;
}
.luma-companion {
  background: linear-gradient(135deg, rgba(139, 92, 246, 0.95), rgba(59, 130, 246, 0.95));
  border-radius: 20px;
  padding: 15px;
  box-shadow: 0 10px 30px rgba(0, 0, 0, 0.3);
  border: 2px solid rgba(255, 255, 255, 0.2);
}
.luma-avatar {
  font-size: 2rem;
  text-align: center;
  margin-bottom: 10px;
  animation: gentle-float 3s ease-in-out infinite;
}
.luma-speech-bubble {
  background: rgba(255, 255, 255, 0.9);
  padding: 10px;
  border-radius: 15px;
  color: #4c1d95;
  font-size: 0.9rem;
  line-height: 1.4;
}
@keyframes gentle-float {
  0%, 100% { transform: translateY(0px); }
  50% { transform: translateY(-5px); }
}
</style>`

const twineStoryTemplate = `Twee Notation (.tw) Story with Luma Wisp Integration

:: Start [startup]
<div id="luma-main-container"></div>
<<set $lumaRealm to "{{realm}}">>
<<set $lumaRelationship to 0>>
<<set $playerChoices to []>>

<<luma>>

# 🌟 The Academy of Remembrance

Welcome, young seeker, to a place where memories become magic and learning transforms into adventure.

*A shimmering figure materializes before you - Luma Wisp, your mystical guide.*

<<lumaspeak "Greetings, brave soul! I sense great potential within you. Which realm calls to your heart first?">>

[[The Realm of Origins (Aether)->AetherIntro]]
[[The Fire Realm->FireIntro]]
[[The Water Realm->WaterIntro]]
[[The Earth Realm->EarthIntro]]
[[The Air Realm->AirIntro]]

:: AetherIntro
<<set $lumaRealm to "aether">>
<<lumatransform "aether">>
<<set $lumaRelationship to $lumaRelationship + 1>>

You drift into a field of ancient starlight.

<<lumaspeak "Tell me about the ancient memories that guide us.">>

[[Continue the conversation->AetherDeep]]
[[Explore other realms->Start]]

:: FireIntro
<<set $lumaRealm to "fire">>
<<lumatransform "fire">>

You step into the warm, glowing Fire Realm.

<<lumaspeak "Welcome to the Fire Realm! What brings you here?">>

[[Ask Luma about transformation->FireQuestion]]
[[Move to another realm->Start]]

:: FireQuestion
<<lumaspeak "How can fire help me change and grow?">>

[[Thank Luma->Start]]

:: WaterIntro
<<set $lumaRealm to "water">>
<<lumatransform "water">>

You enter the flowing, peaceful Water Realm.

<<lumaspeak "Welcome to the Water Realm! Let your emotions flow freely here.">>

[[Ask about emotions->Start]]

:: EarthIntro
<<set $lumaRealm to "earth">>
<<lumatransform "earth">>

You walk into the rooted, humming Earth Realm.

<<lumaspeak "Welcome, seed-keeper! What would you like to grow today?">>

[[Continue->Start]]

:: AirIntro
<<set $lumaRealm to "air">>
<<lumatransform "air">>

You rise into the bright, breezy Air Realm.

<<lumaspeak "Welcome, wind-child! What dreams shall we send soaring?">>

[[Continue->Start]]`
